package rewards

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSelfRecognition indicates an employee recognising themselves.
	ErrSelfRecognition = errors.New("rewards: employees cannot recognize themselves")

	// ErrEmptyMessage indicates a recognition without a reason.
	ErrEmptyMessage = errors.New("rewards: recognition message is empty")
)

// Employee identifies a person by ID; Name is for display only.
type Employee struct {
	ID   string
	Name string
}

// Recognition is one recorded award.
type Recognition struct {
	ID      uuid.UUID
	From    Employee
	To      Employee
	Message string
	At      time.Time // UTC
}

// RecognitionService stores recognitions in arrival order.
type RecognitionService struct {
	mu    sync.RWMutex
	log   []Recognition
	clock func() time.Time
}

// NewRecognitionService returns an empty service. now may be nil for time.Now.
func NewRecognitionService(now func() time.Time) *RecognitionService {
	if now == nil {
		now = time.Now
	}
	return &RecognitionService{clock: now}
}

// Recognize records that from thanks to for message.
func (s *RecognitionService) Recognize(from, to Employee, message string) (Recognition, error) {
	if from.ID == to.ID {
		return Recognition{}, ErrSelfRecognition
	}
	if strings.TrimSpace(message) == "" {
		return Recognition{}, ErrEmptyMessage
	}

	r := Recognition{
		ID:      uuid.New(),
		From:    from,
		To:      to,
		Message: message,
		At:      s.clock().UTC(),
	}

	s.mu.Lock()
	s.log = append(s.log, r)
	s.mu.Unlock()

	return r, nil
}

// For returns the recognitions received by employeeID, oldest first.
func (s *RecognitionService) For(employeeID string) []Recognition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Recognition{}
	for _, r := range s.log {
		if r.To.ID == employeeID {
			out = append(out, r)
		}
	}
	return out
}
