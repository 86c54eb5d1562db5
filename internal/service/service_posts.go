package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/store"
	"github.com/MKhiriev/go-travel-board/internal/utils"
	"github.com/MKhiriev/go-travel-board/internal/validators"
	"github.com/MKhiriev/go-travel-board/models"
	"github.com/google/uuid"
)

// ownerMe selects the posts of the caller in GET /posts?owner=.
const ownerMe = "me"

type postService struct {
	postRepository store.PostRepository

	validator validators.Validator
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// CreatePost stores an offer owned by ownerID. The route is not checked
// against the routes service.
//
// Returns ErrInvalidDataProvided for missing fields, ErrInvalidID when
// routeId is not a uuid and ErrConflict when expireAt cannot be parsed or
// is not in the future.
func (p *postService) CreatePost(ctx context.Context, ownerID uuid.UUID, req models.CreatePostRequest) (models.Post, error) {
	if err := p.validator.Validate(ctx, req); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	routeID, err := utils.ParseID(req.RouteID)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: routeId: %w", ErrInvalidID, err)
	}

	expireAt, err := models.ParseTimestamp(req.ExpireAt)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w: %w", ErrConflict, ErrExpireInPast, err)
	}
	if !expireAt.After(p.now()) {
		return models.Post{}, fmt.Errorf("%w: %w", ErrConflict, ErrExpireInPast)
	}

	post := models.Post{
		ID:       p.ids.Generate(),
		RouteID:  routeID,
		UserID:   ownerID,
		ExpireAt: expireAt,
	}

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("post_id", created.ID.String()).
		Str("user_id", ownerID.String()).
		Msg("post created")
	return created, nil
}

// ListPosts returns the posts matching every filter present in query.
func (p *postService) ListPosts(ctx context.Context, callerID uuid.UUID, query models.PostQuery) ([]models.Post, error) {
	filter, err := p.parseFilter(callerID, query)
	if err != nil {
		return nil, err
	}

	posts, err := p.postRepository.ListPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}
	return posts, nil
}

// parseFilter turns raw query parameters into a filter. expire=true (any
// case) selects expired posts and any other value active ones. route must be
// a uuid and owner either "me" (any case) or a uuid; empty values are ignored.
func (p *postService) parseFilter(callerID uuid.UUID, query models.PostQuery) (models.PostFilter, error) {
	filter := models.PostFilter{Now: p.now().UTC()}

	if query.Expire != nil {
		expired := strings.EqualFold(*query.Expire, "true")
		filter.Expired = &expired
	}

	if query.Route != nil && *query.Route != "" {
		routeID, err := utils.ParseID(*query.Route)
		if err != nil {
			return models.PostFilter{}, fmt.Errorf("%w: route: %w", ErrInvalidID, err)
		}
		filter.RouteID = &routeID
	}

	if query.Owner != nil && *query.Owner != "" {
		if strings.EqualFold(*query.Owner, ownerMe) {
			owner := callerID
			filter.OwnerID = &owner
		} else {
			ownerID, err := utils.ParseID(*query.Owner)
			if err != nil {
				return models.PostFilter{}, fmt.Errorf("%w: owner: %w", ErrInvalidID, err)
			}
			filter.OwnerID = &ownerID
		}
	}

	return filter, nil
}

func (p *postService) GetPost(ctx context.Context, id uuid.UUID) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("post search failed: %w", err)
	}
	return post, nil
}

// DeletePost removes post id when callerID is its author. Returns
// ErrNotFound for a missing post and ErrNotOwner for someone else's.
func (p *postService) DeletePost(ctx context.Context, id, callerID uuid.UUID) error {
	err := p.postRepository.DeletePost(ctx, id, callerID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrOwnerMismatch):
		logger.FromContext(ctx).Warn().
			Str("post_id", id.String()).
			Str("user_id", callerID.String()).
			Msg("attempt to delete a post of another user")
		return ErrNotOwner
	default:
		return fmt.Errorf("post deletion failed: %w", err)
	}
}
