package repositories

import (
	"fmt"

	"placeholder/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB.
// Comments are keyed by post ID first so that listing a post's comments is a
// prefix scan.
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create stores a new comment under the next free ID
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, CommentSeqKey)
		if err != nil {
			return err
		}
		comment.ID = id

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(commentKey(comment.PostID, comment.ID), data)
	})
}

// Put stores a comment under its own ID, replacing any existing one even if
// it was attached to a different post.
func (r *BadgerCommentRepository) Put(comment *models.Comment) error {
	if comment.ID <= 0 {
		return fmt.Errorf("invalid comment id %d", comment.ID)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		old, _, err := findComment(txn, comment.ID)
		if err != nil && err != ErrNotFound {
			return err
		}
		if old != nil {
			if err := txn.Delete(old); err != nil {
				return err
			}
		}
		if err := raiseSeq(txn, CommentSeqKey, comment.ID); err != nil {
			return err
		}
		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(commentKey(comment.PostID, comment.ID), data)
	})
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(id int) (*models.Comment, error) {
	var comment *models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		_, comment, err = findComment(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// List retrieves every comment ordered by post then ID
func (r *BadgerCommentRepository) List() ([]*models.Comment, error) {
	return r.scan([]byte(CommentKeyPrefix))
}

// ListByPost retrieves all comments for a post
func (r *BadgerCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	return r.scan(commentPostPrefix(postID))
}

// Delete deletes a comment by ID
func (r *BadgerCommentRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, _, err := findComment(txn, id)
		if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

func (r *BadgerCommentRepository) scan(prefix []byte) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %w", err)
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// findComment locates a comment by ID, returning its key and value.
func findComment(txn *badger.Txn, id int) ([]byte, *models.Comment, error) {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	prefix := []byte(CommentKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var comment models.Comment
		err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &comment)
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal comment: %w", err)
		}
		if comment.ID == id {
			return item.KeyCopy(nil), &comment, nil
		}
	}
	return nil, nil, ErrNotFound
}
