package menu

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collection = "food_items"

// FirestoreRepository reads and writes the `food_items` collection.
type FirestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

func (r *FirestoreRepository) List(ctx context.Context) ([]Item, error) {
	iter := r.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	out := make([]Item, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list food items: %w", err)
		}
		var it Item
		if err := doc.DataTo(&it); err != nil {
			return nil, fmt.Errorf("decode food item %s: %w", doc.Ref.ID, err)
		}
		it.ID = doc.Ref.ID
		out = append(out, it)
	}
	return out, nil
}

func (r *FirestoreRepository) GetByID(ctx context.Context, id string) (Item, error) {
	doc, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Item{}, ErrNotFound
		}
		return Item{}, fmt.Errorf("get food item %s: %w", id, err)
	}
	var it Item
	if err := doc.DataTo(&it); err != nil {
		return Item{}, fmt.Errorf("decode food item %s: %w", id, err)
	}
	it.ID = doc.Ref.ID
	return it, nil
}

func (r *FirestoreRepository) Create(ctx context.Context, it Item) (Item, error) {
	ref, _, err := r.client.Collection(collection).Add(ctx, it)
	if err != nil {
		return Item{}, fmt.Errorf("create food item: %w", err)
	}
	it.ID = ref.ID
	return it, nil
}

func (r *FirestoreRepository) Update(ctx context.Context, id string, it Item) (Item, error) {
	ref := r.client.Collection(collection).Doc(id)
	if _, err := ref.Set(ctx, it); err != nil {
		if status.Code(err) == codes.NotFound {
			return Item{}, ErrNotFound
		}
		return Item{}, fmt.Errorf("update food item %s: %w", id, err)
	}
	it.ID = id
	return it, nil
}

func (r *FirestoreRepository) Delete(ctx context.Context, id string) error {
	ref := r.client.Collection(collection).Doc(id)
	_, err := ref.Update(ctx, []firestore.Update{{Path: "hidden", Value: true}})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("hide food item %s: %w", id, err)
	}
	return nil
}
