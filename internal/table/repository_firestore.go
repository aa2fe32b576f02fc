package table

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collection = "tables"

type FirestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) List(ctx context.Context) ([]Table, error) {
	iter := r.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	out := make([]Table, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list tables: %w", err)
		}
		var t Table
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("decode table %s: %w", doc.Ref.ID, err)
		}
		t.ID = doc.Ref.ID
		out = append(out, t)
	}
	return out, nil
}

func (r *FirestoreRepository) GetByID(ctx context.Context, id string) (Table, error) {
	doc, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Table{}, ErrNotFound
		}
		return Table{}, fmt.Errorf("get table %s: %w", id, err)
	}
	var t Table
	if err := doc.DataTo(&t); err != nil {
		return Table{}, fmt.Errorf("decode table %s: %w", id, err)
	}
	t.ID = doc.Ref.ID
	return t, nil
}

func (r *FirestoreRepository) Create(ctx context.Context, t Table) (Table, error) {
	if t.Status == "" {
		t.Status = StatusAvailable
	}
	ref, _, err := r.client.Collection(collection).Add(ctx, t)
	if err != nil {
		return Table{}, fmt.Errorf("create table: %w", err)
	}
	t.ID = ref.ID
	return t, nil
}

func (r *FirestoreRepository) UpdateStatus(ctx context.Context, id, st string) error {
	_, err := r.client.Collection(collection).Doc(id).Update(ctx, []firestore.Update{{Path: "status", Value: st}})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("update table %s status: %w", id, err)
	}
	return nil
}

func (r *FirestoreRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete table %s: %w", id, err)
	}
	return nil
}
