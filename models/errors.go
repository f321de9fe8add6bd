// Package models contains the persisted entities and the domain error set.
package models

import "errors"

var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound is returned when a referenced team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrLeaderNotFound signals a team without a LEADER membership, which
	// is a data-integrity violation and is surfaced, not tolerated.
	ErrLeaderNotFound = errors.New("team leader not found")
	// ErrCommentNotFound is returned when a parent comment lookup misses.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrTeamNameTaken signals a duplicate team name.
	ErrTeamNameTaken = errors.New("team name already taken")
	// ErrNicknameTaken signals a duplicate nickname at registration.
	ErrNicknameTaken = errors.New("nickname already taken")
	// ErrEmailTaken signals a duplicate email at registration.
	ErrEmailTaken = errors.New("email already registered")
	// ErrReplyDepth rejects a reply to a reply.
	ErrReplyDepth = errors.New("replies cannot be nested further")
	// ErrNotTeamMember rejects writes that require team membership.
	ErrNotTeamMember = errors.New("user is not a member of this team")
	// ErrUnknownSkill rejects a search or creation tag outside the enum.
	ErrUnknownSkill = errors.New("unknown skill")
	// ErrUnknownProvider rejects an OAuth provider without a mapping entry.
	ErrUnknownProvider = errors.New("unknown oauth provider")
	// ErrUnauthorized signals a missing, malformed or expired credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStorage wraps gateway transport/storage faults. Absence of a row
	// is never an ErrStorage; repositories report it as a nil result.
	ErrStorage = errors.New("storage failure")
)
