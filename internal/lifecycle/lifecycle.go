// Package lifecycle содержит чистую логику жизненного цикла инцидента:
// переходы голосов (NoVote -> Upvoted -> Downvoted -> NoVote) и правила
// автоматического подтверждения/отклонения. Пакет не знает о хранилище -
// репозиторий применяет возвращаемые переходы внутри одной транзакции.
package lifecycle

import (
	"github.com/shenikar/community_safety_system/internal/models"
)

// VoteState - текущее состояние голоса пользователя по инциденту
type VoteState int

const (
	NoVote VoteState = iota
	Upvoted
	Downvoted
)

// StateFromKind переводит сохраненный вид голоса в состояние
func StateFromKind(kind models.VoteKind) VoteState {
	switch kind {
	case models.VoteUp:
		return Upvoted
	case models.VoteDown:
		return Downvoted
	}
	return NoVote
}

// Action - действие над строкой голоса в хранилище
type Action int

const (
	// Insert - первый голос пользователя, вставить строку
	Insert Action = iota
	// Retract - повтор того же голоса, удалить строку (отзыв)
	Retract
	// Swap - смена вида голоса, заменить строку
	Swap
)

// Transition - результат применения голоса: действие над строкой голоса
// и дельты счетчиков инцидента
type Transition struct {
	Action    Action
	Next      VoteState
	UpDelta   int
	DownDelta int
}

// ApplyVote вычисляет переход для голоса kind при текущем состоянии prior.
// Неизвестный вид голоса - ошибка валидации.
func ApplyVote(prior VoteState, kind models.VoteKind) (Transition, error) {
	if kind != models.VoteUp && kind != models.VoteDown {
		return Transition{}, models.NewValidationError("invalid vote type %q", kind)
	}

	if kind == models.VoteUp {
		switch prior {
		case Upvoted:
			// Повтор того же голоса отзывает его
			return Transition{Action: Retract, Next: NoVote, UpDelta: -1}, nil
		case Downvoted:
			// Смена голоса: старый счетчик -1, новый +1
			return Transition{Action: Swap, Next: Upvoted, UpDelta: 1, DownDelta: -1}, nil
		default:
			return Transition{Action: Insert, Next: Upvoted, UpDelta: 1}, nil
		}
	}

	switch prior {
	case Downvoted:
		return Transition{Action: Retract, Next: NoVote, DownDelta: -1}, nil
	case Upvoted:
		return Transition{Action: Swap, Next: Downvoted, UpDelta: -1, DownDelta: 1}, nil
	default:
		return Transition{Action: Insert, Next: Downvoted, DownDelta: 1}, nil
	}
}

// Promotion - решения автоматического продвижения после мутации голосов
type Promotion struct {
	// Verify - выставить verified=true и status="verified"
	Verify bool
	// Dismiss - выставить status="dismissed"
	Dismiss bool
}

// EvaluatePromotion проверяет пороги автоподтверждения и автоотклонения.
// Проверка подтверждения выполняется первой, затем отклонение по тем же
// счетчикам; обе проверки идемпотентны, повторный вызов на уже
// продвинутом инциденте ничего не меняет.
//
// Подтверждение намеренно не срабатывает для терминальных статусов
// (resolved, dismissed): голоса не должны возвращать закрытый инцидент
// в видимое состояние "verified".
func EvaluatePromotion(inc *models.Incident) Promotion {
	var p Promotion

	if inc.Upvotes >= 3 && !inc.Verified &&
		inc.Status != models.StatusResolved && inc.Status != models.StatusDismissed {
		p.Verify = true
	}

	if inc.Downvotes >= 5 && inc.Downvotes > 2*inc.Upvotes &&
		inc.Status != models.StatusDismissed {
		p.Dismiss = true
	}

	return p
}

// CanSetStatus проверяет явную смену статуса: только автор инцидента и
// только в один из разрешенных статусов
func CanSetStatus(inc *models.Incident, requesterID string, newStatus models.Status) error {
	switch newStatus {
	case models.StatusActive, models.StatusResolved, models.StatusDismissed:
	default:
		return models.NewValidationError("invalid status %q", newStatus)
	}
	if inc.ReporterID != requesterID {
		return models.ErrPermissionDenied
	}
	return nil
}
