package usecase

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"hireflow/internal/entity"
)

// In-memory fakes for the repository and push boundaries.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, entity.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByRole(roleNames []string) ([]*entity.User, error) {
	var matched []*entity.User
	for _, user := range r.users {
		for _, name := range roleNames {
			if strings.EqualFold(user.Role, name) && user.IsActive {
				copied := *user
				matched = append(matched, &copied)
				break
			}
		}
	}
	return matched, nil
}

type fakeRequestRepo struct {
	requests map[string]entity.HiringRequest
	nextID   int
	failNext bool
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]entity.HiringRequest)}
}

func (r *fakeRequestRepo) Create(request *entity.HiringRequest) error {
	if r.failNext {
		r.failNext = false
		return fmt.Errorf("simulated persistence failure")
	}
	r.nextID++
	request.ID = fmt.Sprintf("req-%d", r.nextID)
	request.CreatedAt = time.Now().UTC()
	request.UpdatedAt = request.CreatedAt
	r.requests[request.ID] = *request
	return nil
}

func (r *fakeRequestRepo) GetByID(id string) (*entity.HiringRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("hiring request %s: %w", id, entity.ErrNotFound)
	}
	copied := request
	return &copied, nil
}

func (r *fakeRequestRepo) Update(request *entity.HiringRequest) error {
	if _, ok := r.requests[request.ID]; !ok {
		return fmt.Errorf("hiring request %s: %w", request.ID, entity.ErrNotFound)
	}
	request.UpdatedAt = time.Now().UTC()
	r.requests[request.ID] = *request
	return nil
}

func (r *fakeRequestRepo) List(limit, offset int) ([]*entity.HiringRequest, int64, error) {
	requests := make([]*entity.HiringRequest, 0, len(r.requests))
	for id := range r.requests {
		copied := r.requests[id]
		requests = append(requests, &copied)
	}
	return requests, int64(len(requests)), nil
}

type fakeNotificationRepo struct {
	notifications []entity.Notification
	users         *fakeUserRepo
	nextID        int
	failCreate    bool
}

func newFakeNotificationRepo(users *fakeUserRepo) *fakeNotificationRepo {
	return &fakeNotificationRepo{users: users}
}

func (r *fakeNotificationRepo) Create(notification *entity.Notification) error {
	if r.failCreate {
		return fmt.Errorf("simulated notification store failure")
	}
	r.nextID++
	notification.ID = fmt.Sprintf("notif-%d", r.nextID)
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) GetByID(id string) (*entity.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			copied := r.notifications[i]
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
}

func (r *fakeNotificationRepo) ListByReceiver(receiverID string, limit, offset int) ([]*entity.Notification, int64, error) {
	var matched []*entity.Notification
	for i := range r.notifications {
		if r.notifications[i].ReceiverID == receiverID {
			copied := r.notifications[i]
			matched = append(matched, &copied)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeNotificationRepo) CountUnread(receiverID string) (int64, error) {
	var count int64
	for i := range r.notifications {
		if r.notifications[i].ReceiverID == receiverID && !r.notifications[i].IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(id string) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
}

func (r *fakeNotificationRepo) MarkAllRead(receiverID string) error {
	for i := range r.notifications {
		if r.notifications[i].ReceiverID == receiverID {
			r.notifications[i].IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(id string) error {
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
}

func (r *fakeNotificationRepo) ResolveActions(entityID, entityType, message string) ([]*entity.Notification, error) {
	var resolved []*entity.Notification
	for i := range r.notifications {
		n := &r.notifications[i]
		if n.EntityID != nil && *n.EntityID == entityID &&
			n.EntityType != nil && *n.EntityType == entityType &&
			n.Type == entity.NotificationActionRequired {
			n.Type = entity.NotificationInfo
			n.Actions = nil
			n.Message = message
			n.IsRead = false
			copied := *n
			resolved = append(resolved, &copied)
		}
	}
	if resolved == nil {
		return []*entity.Notification{}, nil
	}
	return resolved, nil
}

func (r *fakeNotificationRepo) GetSenderName(senderID string) (string, error) {
	user, err := r.users.GetByID(senderID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// actionableFor returns the outstanding actionable notifications for an entity.
func (r *fakeNotificationRepo) actionableFor(entityID string) []entity.Notification {
	var matched []entity.Notification
	for _, n := range r.notifications {
		if n.EntityID != nil && *n.EntityID == entityID && n.Type == entity.NotificationActionRequired {
			matched = append(matched, n)
		}
	}
	return matched
}

// receivedBy returns all notifications held by a receiver.
func (r *fakeNotificationRepo) receivedBy(receiverID string) []entity.Notification {
	var matched []entity.Notification
	for _, n := range r.notifications {
		if n.ReceiverID == receiverID {
			matched = append(matched, n)
		}
	}
	return matched
}

type fakePusher struct {
	mu     sync.Mutex
	pushes map[string]int
}

func newFakePusher() *fakePusher {
	return &fakePusher{pushes: make(map[string]int)}
}

func (p *fakePusher) Push(userID string, payload interface{}) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pushes[userID]++
	return false // nobody connected; durability must not depend on this
}
