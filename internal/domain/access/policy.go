package access

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/club-manager/internal/domain/user"
)

var ErrForbidden = errors.New("operation not permitted for role")

// Operation names a gated club action.
type Operation string

const (
	OpRead           Operation = "read"
	OpManageRoster   Operation = "roster.manage"
	OpManageFixtures Operation = "fixtures.manage"
	OpRunLiveMatch   Operation = "live.run"
	OpVoteCoachMotm  Operation = "motm.vote_coach"
	OpVoteParentMotm Operation = "motm.vote_parent"
)

// Options tunes the role table where club practice differs.
type Options struct {
	// AdminCanVoteCoach lets admins cast the coach MOTM vote.
	AdminCanVoteCoach bool
}

// Policy is an explicit role x operation table consulted by every mutation.
type Policy struct {
	allowed map[user.Role]map[Operation]struct{}
}

func NewPolicy(opts Options) Policy {
	staff := []Operation{OpRead, OpManageRoster, OpManageFixtures, OpRunLiveMatch}

	admin := toSet(staff...)
	if opts.AdminCanVoteCoach {
		admin[OpVoteCoachMotm] = struct{}{}
	}

	coach := toSet(staff...)
	coach[OpVoteCoachMotm] = struct{}{}

	return Policy{
		allowed: map[user.Role]map[Operation]struct{}{
			user.RoleAdmin:  admin,
			user.RoleCoach:  coach,
			user.RoleParent: toSet(OpRead, OpVoteParentMotm),
		},
	}
}

func DefaultPolicy() Policy {
	return NewPolicy(Options{})
}

func (p Policy) Allows(role user.Role, op Operation) bool {
	ops, ok := p.allowed[role]
	if !ok {
		return false
	}
	_, ok = ops[op]
	return ok
}

func (p Policy) Authorize(role user.Role, op Operation) error {
	if !p.Allows(role, op) {
		return fmt.Errorf("%w: role=%s operation=%s", ErrForbidden, role, op)
	}
	return nil
}

func toSet(ops ...Operation) map[Operation]struct{} {
	out := make(map[Operation]struct{}, len(ops))
	for _, op := range ops {
		out[op] = struct{}{}
	}
	return out
}
