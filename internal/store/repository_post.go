package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
type postRepository struct {
	*DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with CreatedAt filled in.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createPost, post.ID, post.RouteID, post.UserID, post.ExpireAt)
	if err := row.Scan(&post.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Str("user_id", post.UserID.String()).
			Msg("failed to create post")
		return models.Post{}, classifyPostgresError(err, ErrExecutingStatement)
	}

	post.CreatedAt = post.CreatedAt.UTC()
	return post, nil
}

// ListPosts returns the posts matching every condition set in filter.
// The result is never nil.
func (p *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 16)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// GetPost returns the post with the given id, or [ErrNotFound].
func (p *postRepository) GetPost(ctx context.Context, id uuid.UUID) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := scanPost(p.DB.QueryRowContext(ctx, getPost, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "postRepository.GetPost").Str("post_id", id.String()).Msg("failed to query post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// DeletePost removes the post if it belongs to ownerID.
//
// The owner check and the DELETE run in one transaction with the row locked,
// so a post cannot change hands between the two. Returns [ErrNotFound] for a
// missing post and [ErrOwnerMismatch] when ownerID is not the author.
func (p *postRepository) DeletePost(ctx context.Context, id, ownerID uuid.UUID) error {
	log := logger.FromContext(ctx)

	err := p.withTx(ctx, func(tx *sql.Tx) error {
		var author uuid.UUID
		err := tx.QueryRowContext(ctx, lockPostOwner, id).Scan(&author)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if author != ownerID {
			return ErrOwnerMismatch
		}

		if _, err = tx.ExecContext(ctx, deletePost, id); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrOwnerMismatch) {
		log.Err(err).
			Str("func", "postRepository.DeletePost").
			Str("post_id", id.String()).
			Msg("failed to delete post")
	}

	return err
}

// Purge deletes every post.
func (p *postRepository) Purge(ctx context.Context) (int64, error) {
	deleted, err := p.purgeTable(ctx, purgePosts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postRepository.Purge").Msg("failed to purge posts")
		return 0, err
	}

	return deleted, nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post

	err := row.Scan(
		&post.ID,
		&post.RouteID,
		&post.UserID,
		&post.ExpireAt,
		&post.CreatedAt,
	)
	if err != nil {
		return models.Post{}, err
	}

	post.ExpireAt = post.ExpireAt.UTC()
	post.CreatedAt = post.CreatedAt.UTC()

	return post, nil
}
