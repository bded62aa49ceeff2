package usecase

import (
	"hireflow/internal/entity"
	"hireflow/internal/repo/persistent"
)

// ApproverResolver resolves the current members of a role, trying each role
// in order and returning the first non-empty set. It queries live data on
// every call so role reassignments take effect immediately.
type ApproverResolver interface {
	Resolve(roles ...entity.Role) ([]*entity.User, error)
}

type approverResolver struct {
	userRepo persistent.UserRepository
}

func NewApproverResolver(userRepo persistent.UserRepository) ApproverResolver {
	return &approverResolver{userRepo: userRepo}
}

func (r *approverResolver) Resolve(roles ...entity.Role) ([]*entity.User, error) {
	for _, role := range roles {
		users, err := r.userRepo.GetByRole(entity.LegacyNames(role))
		if err != nil {
			return nil, err
		}
		if len(users) > 0 {
			return users, nil
		}
	}
	return []*entity.User{}, nil
}
