// Package reconcile реализует чистый алгоритм классификации конфликтов.
//
// Классификация детерминирована: при одинаковых входах выходные множества
// {Accept, RemoteWins, Conflicts} совпадают, а вместе они образуют разбиение
// локального батча без пересечений. Пакет не держит состояния и не делает
// I/O, что позволяет тестировать его исчерпывающе.
package reconcile

import (
	"sort"

	"github.com/L0dyv/litepad/internal/models"
)

// Outcome — исход классификации одного документа
type Outcome int

const (
	// OutcomeAccept — локальная версия принимается (локальное создание,
	// либо устройство на уровне или впереди известного ему состояния relay)
	OutcomeAccept Outcome = iota
	// OutcomeRemoteWins — relay строго впереди, локальная копия не трогалась
	// с последнего согласования: безопасно перезаписать
	OutcomeRemoteWins
	// OutcomeConflict — обе стороны менялись с момента последнего
	// согласования; разрешение отдается внешнему слою
	OutcomeConflict
)

// Conflict представляет пару разошедшихся копий одного документа
type Conflict struct {
	Local  models.Document
	Remote models.RelayDocument
}

// Result представляет разбиение локального батча плюс документы relay,
// отсутствующие в батче (правки других устройств)
type Result struct {
	Accept     []string
	RemoteWins []models.RelayDocument
	Conflicts  []Conflict
}

// ClassifyOne классифицирует один локальный документ против состояния relay.
// local == nil означает "у этой стороны документа нет".
//
// Известное ограничение схемы счётчиков: два устройства, стартовавшие с
// одной версии relay и оба локально дошедшие до одного номера, неотличимы
// от "локальная копия уже включает это состояние relay". Честное решение —
// отдельное поле base version у каждой локальной правки; сравнение ниже
// сознательно оставлено на LocalVersion против Version.
func ClassifyOne(local *models.Document, remote *models.RelayDocument) Outcome {
	if remote == nil {
		// локальные создания принимаются безусловно
		return OutcomeAccept
	}
	if local == nil {
		return OutcomeRemoteWins
	}
	if local.LocalVersion >= remote.Version {
		return OutcomeAccept
	}
	// relay строго впереди
	if local.HasLocalChanges() {
		return OutcomeConflict
	}
	return OutcomeRemoteWins
}

// Classify сравнивает батч локально изменённых документов со снимком relay.
// Каждый документ батча попадает ровно в одно из трёх множеств; документы
// relay, чей id отсутствует в батче, дополнительно выходят как RemoteWins —
// это правки других устройств, которых это устройство ещё не видело.
//
// Сравнение версий — единственный арбитр; wall-clock метки времени
// информационны и никогда не разрешают споры, потому что часы устройств
// не считаются синхронизированными.
func Classify(local []models.Document, relay map[string]models.RelayDocument) Result {
	res := Result{}

	inBatch := make(map[string]bool, len(local))
	for i := range local {
		d := local[i]
		inBatch[d.ID] = true

		var remote *models.RelayDocument
		if r, ok := relay[d.ID]; ok {
			r := r
			remote = &r
		}

		switch ClassifyOne(&d, remote) {
		case OutcomeAccept:
			res.Accept = append(res.Accept, d.ID)
		case OutcomeRemoteWins:
			res.RemoteWins = append(res.RemoteWins, *remote)
		case OutcomeConflict:
			res.Conflicts = append(res.Conflicts, Conflict{Local: d, Remote: *remote})
		}
	}

	// документы relay вне батча — правки других устройств
	for id, r := range relay {
		if !inBatch[id] {
			res.RemoteWins = append(res.RemoteWins, r)
		}
	}

	// детерминированный порядок выходных множеств
	sort.Strings(res.Accept)
	sort.Slice(res.RemoteWins, func(i, j int) bool {
		return res.RemoteWins[i].ID < res.RemoteWins[j].ID
	})
	sort.Slice(res.Conflicts, func(i, j int) bool {
		return res.Conflicts[i].Local.ID < res.Conflicts[j].Local.ID
	})

	return res
}
