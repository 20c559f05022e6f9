package service

import (
	"context"

	"github.com/microboard/backend/internal/models"
	"github.com/microboard/backend/internal/repositories"
)

// NoPrincipal is the principal value for an unauthenticated caller.
// User IDs are assigned from 1, so 0 never names a real user.
const NoPrincipal uint = 0

// PostService owns the mutation and authorization rules for posts.
// Handlers resolve the principal from the request and pass it in
// explicitly; the service never reads ambient auth state.
type PostService struct {
	posts repositories.PostRepository
	users repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, users repositories.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// isOwner is the single ownership predicate shared by Update and Delete.
func isOwner(principal uint, post *models.Post) bool {
	return principal == post.AuthorID
}

// ListAll returns every post, newest first, with author and likers
// resolved to display form.
func (s *PostService) ListAll(ctx context.Context) ([]models.PostView, error) {
	posts, err := s.posts.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveAll(posts)
}

// ListByAuthorName returns the posts of one author, resolved by display
// name. Returns repositories.ErrUserNotFound if no such user exists.
func (s *PostService) ListByAuthorName(ctx context.Context, username string) ([]models.PostView, error) {
	author, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.GetPostsByAuthorID(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	return s.resolveAll(posts)
}

// Create persists a new post owned by the principal, with an empty
// liked_by set and a server-assigned ID and timestamp.
func (s *PostService) Create(ctx context.Context, principal uint, content string) (*models.PostView, error) {
	if principal == NoPrincipal {
		return nil, ErrUnauthorized
	}

	post := &models.Post{
		AuthorID: principal,
		Content:  content,
		LikedBy:  []uint{},
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return s.resolve(post)
}

// Update replaces the content of a post owned by the principal.
// author_id and liked_by are untouched.
func (s *PostService) Update(ctx context.Context, principal uint, postID, content string) (*models.PostView, error) {
	if principal == NoPrincipal {
		return nil, ErrUnauthorized
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !isOwner(principal, post) {
		return nil, ErrForbidden
	}

	if err := s.posts.UpdateContent(ctx, postID, content); err != nil {
		return nil, err
	}
	post.Content = content
	return s.resolve(post)
}

// Delete permanently removes a post owned by the principal.
func (s *PostService) Delete(ctx context.Context, principal uint, postID string) error {
	if principal == NoPrincipal {
		return ErrUnauthorized
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if !isOwner(principal, post) {
		return ErrForbidden
	}

	return s.posts.DeletePost(ctx, postID)
}

// Like adds the principal to the post's liked_by set. A repeat like is
// rejected with ErrAlreadyLiked rather than ignored. Nothing stops a
// principal from liking their own post.
func (s *PostService) Like(ctx context.Context, principal uint, postID string) (*models.PostView, error) {
	if principal == NoPrincipal {
		return nil, ErrUnauthorized
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.HasLiked(principal) {
		return nil, ErrAlreadyLiked
	}

	if err := s.posts.AddLike(ctx, postID, principal); err != nil {
		return nil, err
	}
	post.LikedBy = append(post.LikedBy, principal)
	return s.resolve(post)
}

// Unlike removes the principal from the post's liked_by set. Unliking a
// post that was never liked is rejected with ErrNotLiked.
func (s *PostService) Unlike(ctx context.Context, principal uint, postID string) (*models.PostView, error) {
	if principal == NoPrincipal {
		return nil, ErrUnauthorized
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.HasLiked(principal) {
		return nil, ErrNotLiked
	}

	if err := s.posts.RemoveLike(ctx, postID, principal); err != nil {
		return nil, err
	}
	remaining := make([]uint, 0, len(post.LikedBy))
	for _, id := range post.LikedBy {
		if id != principal {
			remaining = append(remaining, id)
		}
	}
	post.LikedBy = remaining
	return s.resolve(post)
}

// resolve populates a single post's author and likers to display form.
func (s *PostService) resolve(post *models.Post) (*models.PostView, error) {
	views, err := s.resolveAll([]models.Post{*post})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// resolveAll turns raw posts into wire views with one batched user
// lookup across every author and liker involved.
func (s *PostService) resolveAll(posts []models.Post) ([]models.PostView, error) {
	idSet := make(map[uint]struct{})
	for _, p := range posts {
		idSet[p.AuthorID] = struct{}{}
		for _, id := range p.LikedBy {
			idSet[id] = struct{}{}
		}
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.users.GetUsersByIDs(ids)
	if err != nil {
		return nil, err
	}
	refs := make(map[uint]models.UserRef, len(users))
	for _, u := range users {
		refs[u.ID] = models.UserRef{ID: u.ID, Username: u.Username}
	}

	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		view := models.PostView{
			ID:        p.ID.Hex(),
			Content:   p.Content,
			Author:    refs[p.AuthorID],
			LikedBy:   []models.UserRef{},
			CreatedAt: p.CreatedAt,
		}
		if view.Author.ID == 0 {
			// Author row is gone; keep the raw ID so the post still renders.
			view.Author = models.UserRef{ID: p.AuthorID}
		}
		for _, id := range p.LikedBy {
			if ref, ok := refs[id]; ok {
				view.LikedBy = append(view.LikedBy, ref)
			}
		}
		views = append(views, view)
	}
	return views, nil
}
