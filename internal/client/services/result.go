package services

import "github.com/dmitrijs2005/sessionkeeper/internal/client/models"

// Kind classifies how an operation ended.
type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindApplication
	KindTransport
	KindUnauthenticated
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindApplication:
		return "application"
	case KindTransport:
		return "transport"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is what the presentation layer shows after an operation.
type Result struct {
	Op      Op
	State   State
	Kind    Kind
	Message string
	// Session is set after a successful login or preference update.
	Session *models.Session
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.State == Succeeded }
