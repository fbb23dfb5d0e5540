package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/colorpal/colorpal-server/internal/domain"
	"github.com/colorpal/colorpal-server/internal/store"
)

// Follow records that followerID follows followingID. Repeating it is a no-op.
func (s *Store) Follow(ctx context.Context, followerID, followingID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO follows (follower_id, following_id, created_at) VALUES (?, ?, ?)`,
		followerID, followingID, formatTime(time.Now()))
	return err
}

// Unfollow removes a follow edge. Missing edges are not an error.
func (s *Store) Unfollow(ctx context.Context, followerID, followingID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = ? AND following_id = ?`, followerID, followingID)
	return err
}

// AreFriends reports whether a and b are friends.
func (s *Store) AreFriends(ctx context.Context, a, b string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM friendships WHERE user_id = ? AND friend_id = ?`, a, b).Scan(&n)
	return n > 0, err
}

// RemoveFriendship drops the friendship and every follow edge between a and b.
func (s *Store) RemoveFriendship(ctx context.Context, a, b string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM friendships WHERE (user_id = ?1 AND friend_id = ?2) OR (user_id = ?2 AND friend_id = ?1)`,
		`DELETE FROM follows WHERE (follower_id = ?1 AND following_id = ?2) OR (follower_id = ?2 AND following_id = ?1)`,
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q, a, b); err != nil {
			return err
		}
	}
	return tx.Commit()
}

const friendRequestColumns = `id, sender_id, receiver_id, status, created_at, updated_at`

func scanFriendRequest(row scanner) (*domain.FriendRequest, error) {
	var (
		r         domain.FriendRequest
		status    string
		createdAt string
		updatedAt string
	)
	err := row.Scan(&r.ID, &r.SenderID, &r.ReceiverID, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if r.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if r.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	r.Status = domain.FriendRequestStatus(status)
	return &r, nil
}

// CreateFriendRequest inserts a request.
func (s *Store) CreateFriendRequest(ctx context.Context, r *domain.FriendRequest) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO friend_requests (`+friendRequestColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.SenderID, r.ReceiverID, string(r.Status), formatTime(r.CreatedAt), formatTime(r.UpdatedAt))
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// GetFriendRequest loads one request.
func (s *Store) GetFriendRequest(ctx context.Context, id string) (*domain.FriendRequest, error) {
	r, err := scanFriendRequest(s.db.QueryRowContext(ctx,
		`SELECT `+friendRequestColumns+` FROM friend_requests WHERE id = ?`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return r, nil
}

// GetPendingFriendRequestBetween finds a pending request in either direction.
func (s *Store) GetPendingFriendRequestBetween(ctx context.Context, a, b string) (*domain.FriendRequest, error) {
	r, err := scanFriendRequest(s.db.QueryRowContext(ctx, `
		SELECT `+friendRequestColumns+` FROM friend_requests
		WHERE status = 'PENDING'
		  AND ((sender_id = ?1 AND receiver_id = ?2) OR (sender_id = ?2 AND receiver_id = ?1))
		LIMIT 1`, a, b))
	if err != nil {
		return nil, notFound(err)
	}
	return r, nil
}

// ListPendingFriendRequests returns requests awaiting receiverID's answer,
// newest first, with Sender filled in.
func (s *Store) ListPendingFriendRequests(ctx context.Context, receiverID string) ([]*domain.FriendRequest, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+friendRequestColumns+` FROM friend_requests
		WHERE receiver_id = ? AND status = 'PENDING'
		ORDER BY created_at DESC, id`, receiverID)
	if err != nil {
		return nil, err
	}

	var (
		out       []*domain.FriendRequest
		senderIDs []string
	)
	for rows.Next() {
		r, err := scanFriendRequest(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, r)
		senderIDs = append(senderIDs, r.SenderID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	senders, err := s.GetUsersByIDs(ctx, senderIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.User, len(senders))
	for _, u := range senders {
		byID[u.ID] = u
	}
	for _, r := range out {
		r.Sender = byID[r.SenderID]
	}
	return out, nil
}

// RespondToFriendRequest moves a pending request to status. Accepting also
// records the friendship in both directions, in the same transaction.
func (s *Store) RespondToFriendRequest(ctx context.Context, id string, status domain.FriendRequestStatus) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	r, err := scanFriendRequest(tx.QueryRowContext(ctx,
		`SELECT `+friendRequestColumns+` FROM friend_requests WHERE id = ?`, id))
	if err != nil {
		return notFound(err)
	}

	now := formatTime(time.Now())
	if _, err := tx.ExecContext(ctx,
		`UPDATE friend_requests SET status = ?, updated_at = ? WHERE id = ?`, string(status), now, id); err != nil {
		return err
	}

	if status == domain.FriendRequestAccepted {
		for _, pair := range [][2]string{{r.SenderID, r.ReceiverID}, {r.ReceiverID, r.SenderID}} {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO friendships (user_id, friend_id, created_at) VALUES (?, ?, ?)`,
				pair[0], pair[1], now); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}
