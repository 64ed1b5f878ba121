package usecase

import (
	"github.com/riskibarqy/club-manager/internal/domain/access"
	"github.com/riskibarqy/club-manager/internal/domain/user"
)

func authorize(policy access.Policy, actor user.Principal, op access.Operation) error {
	return categorize(policy.Authorize(actor.Role, op))
}
