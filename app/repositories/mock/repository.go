package mock

import (
	"fmt"
	"sort"
	"sync"

	"placeholder/app/models"
	"placeholder/app/repositories"
)

type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

type CommentRepository struct {
	comments map[int]*models.Comment
	nextID   int
	mutex    sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[int]*models.Post)
	m.nextID = 1
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[int]*models.Comment),
		nextID:   1,
	}
}

// PostRepository implementation
func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	cp := *post
	m.posts[post.ID] = &cp
	return nil
}

func (m *PostRepository) Put(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if post.ID <= 0 {
		return fmt.Errorf("invalid post id %d", post.ID)
	}
	cp := *post
	m.posts[post.ID] = &cp
	if post.ID >= m.nextID {
		m.nextID = post.ID + 1
	}
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	cp := *post
	return &cp, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	cp := *post
	m.posts[post.ID] = &cp
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) List(limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	count := 0
	for id := 1; id < m.nextID; id++ {
		post, exists := m.posts[id]
		if !exists {
			continue
		}
		if count >= offset && (limit <= 0 || len(posts) < limit) {
			cp := *post
			posts = append(posts, &cp)
		}
		count++
	}
	return posts, nil
}

// CommentRepository implementation
func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	cp := *comment
	m.comments[comment.ID] = &cp
	return nil
}

func (m *CommentRepository) Put(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if comment.ID <= 0 {
		return fmt.Errorf("invalid comment id %d", comment.ID)
	}
	cp := *comment
	m.comments[comment.ID] = &cp
	if comment.ID >= m.nextID {
		m.nextID = comment.ID + 1
	}
	return nil
}

func (m *CommentRepository) GetByID(id int) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	cp := *comment
	return &cp, nil
}

func (m *CommentRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *CommentRepository) List() ([]*models.Comment, error) {
	return m.filter(func(*models.Comment) bool { return true }), nil
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	return m.filter(func(c *models.Comment) bool { return c.PostID == postID }), nil
}

// filter returns matching comments ordered like the badger repository.
func (m *CommentRepository) filter(keep func(*models.Comment) bool) []*models.Comment {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := []*models.Comment{}
	for _, comment := range m.comments {
		if keep(comment) {
			cp := *comment
			comments = append(comments, &cp)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].PostID != comments[j].PostID {
			return comments[i].PostID < comments[j].PostID
		}
		return comments[i].ID < comments[j].ID
	})
	return comments
}
