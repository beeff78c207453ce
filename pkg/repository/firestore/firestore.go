package firestore

import (
	"context"
	"regexp"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionHash  = "kv_hash"
	collectionSet   = "kv_set"
	collectionList  = "kv_list"
	collectionItems = "items"

	fieldHash    = "fields"
	fieldMembers = "members"
	fieldSeq     = "seq"
	fieldValue   = "value"
)

// Store is a KVStore on Firestore. Every key is one document; list entries
// live in a subcollection ordered by a per-key sequence number.
type Store struct {
	client *firestore.Client
}

var _ interfaces.KVStore = (*Store)(nil)

// New creates a new Firestore-based store
func New(ctx context.Context, projectID, databaseID string) (*Store, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Store{
		client: client,
	}, nil
}

// Close releases the underlying client
func (x *Store) Close() error {
	return x.client.Close()
}

var reservedDocID = regexp.MustCompile(`^__.*__$`)

// ToDocumentID validates a store key as a Firestore document ID.
// Keys use colon (:) as separator, which Firestore accepts as is.
func ToDocumentID(key string) (string, error) {
	switch {
	case key == "":
		return "", goerr.Wrap(repository.ErrInvalidInput, "key is empty")
	case key == "." || key == "..":
		return "", goerr.Wrap(repository.ErrInvalidInput, "key is a relative path", goerr.V("key", key))
	case strings.Contains(key, "/"):
		return "", goerr.Wrap(repository.ErrInvalidInput, "key must not contain slash", goerr.V("key", key))
	case reservedDocID.MatchString(key):
		return "", goerr.Wrap(repository.ErrInvalidInput, "key matches reserved pattern", goerr.V("key", key))
	case len(key) > 1500:
		return "", goerr.Wrap(repository.ErrInvalidInput, "key is too long", goerr.V("length", len(key)))
	}
	return key, nil
}

func (x *Store) doc(collection, key string) (*firestore.DocumentRef, error) {
	id, err := ToDocumentID(key)
	if err != nil {
		return nil, err
	}
	return x.client.Collection(collection).Doc(id), nil
}

func (x *Store) HSet(ctx context.Context, key, field, value string) error {
	ref, err := x.doc(collectionHash, key)
	if err != nil {
		return err
	}

	data := map[string]any{
		fieldHash: map[string]any{field: value},
	}
	if _, err := ref.Set(ctx, data, firestore.MergeAll); err != nil {
		return goerr.Wrap(err, "failed to set hash field",
			goerr.V("key", key),
			goerr.V("field", field),
		)
	}
	return nil
}

func (x *Store) HGet(ctx context.Context, key, field string) (string, bool, error) {
	fields, err := x.HGetAll(ctx, key)
	if err != nil {
		return "", false, err
	}
	v, ok := fields[field]
	return v, ok, nil
}

func (x *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	ref, err := x.doc(collectionHash, key)
	if err != nil {
		return nil, err
	}

	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return map[string]string{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get hash", goerr.V("key", key))
	}

	var data struct {
		Fields map[string]string `firestore:"fields"`
	}
	if err := doc.DataTo(&data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode hash", goerr.V("key", key))
	}
	if data.Fields == nil {
		return map[string]string{}, nil
	}
	return data.Fields, nil
}

func (x *Store) SAdd(ctx context.Context, key string, members ...string) error {
	if len(members) == 0 {
		return nil
	}
	ref, err := x.doc(collectionSet, key)
	if err != nil {
		return err
	}

	args := make([]any, len(members))
	for i, m := range members {
		args[i] = m
	}

	data := map[string]any{
		fieldMembers: firestore.ArrayUnion(args...),
	}
	if _, err := ref.Set(ctx, data, firestore.MergeAll); err != nil {
		return goerr.Wrap(err, "failed to add set members", goerr.V("key", key))
	}
	return nil
}

func (x *Store) SMembers(ctx context.Context, key string) ([]string, error) {
	ref, err := x.doc(collectionSet, key)
	if err != nil {
		return nil, err
	}

	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return []string{}, nil
		}
		return nil, goerr.Wrap(err, "failed to get set", goerr.V("key", key))
	}

	var data struct {
		Members []string `firestore:"members"`
	}
	if err := doc.DataTo(&data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode set", goerr.V("key", key))
	}
	if data.Members == nil {
		return []string{}, nil
	}
	return data.Members, nil
}

type listItem struct {
	Seq   int64  `firestore:"seq"`
	Value string `firestore:"value"`
}

// LPush appends items under a transaction so that sequence numbers stay
// strictly increasing with concurrent writers.
func (x *Store) LPush(ctx context.Context, key string, values ...string) error {
	if len(values) == 0 {
		return nil
	}
	ref, err := x.doc(collectionList, key)
	if err != nil {
		return err
	}

	err = x.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var seq int64
		doc, err := tx.Get(ref)
		switch {
		case err == nil:
			if v, err := doc.DataAt(fieldSeq); err == nil {
				if n, ok := v.(int64); ok {
					seq = n
				}
			}
		case status.Code(err) == codes.NotFound:
		default:
			return goerr.Wrap(err, "failed to get list head")
		}

		items := ref.Collection(collectionItems)
		for _, v := range values {
			seq++
			if err := tx.Create(items.NewDoc(), &listItem{Seq: seq, Value: v}); err != nil {
				return goerr.Wrap(err, "failed to create list item")
			}
		}
		return tx.Set(ref, map[string]any{fieldSeq: seq}, firestore.MergeAll)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to push list items", goerr.V("key", key))
	}
	return nil
}

func (x *Store) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	ref, err := x.doc(collectionList, key)
	if err != nil {
		return nil, err
	}

	query := ref.Collection(collectionItems).OrderBy(fieldSeq, firestore.Desc)
	bounded := start >= 0 && stop >= 0
	if bounded {
		if start > stop {
			return []string{}, nil
		}
		query = query.Offset(int(start)).Limit(int(stop - start + 1))
	}

	var values []string
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate list", goerr.V("key", key))
		}

		var item listItem
		if err := doc.DataTo(&item); err != nil {
			return nil, goerr.Wrap(err, "failed to decode list item", goerr.V("key", key))
		}
		values = append(values, item.Value)
	}

	if bounded {
		if values == nil {
			return []string{}, nil
		}
		return values, nil
	}

	from, to, ok := repository.ListBounds(int64(len(values)), start, stop)
	if !ok {
		return []string{}, nil
	}
	return values[from:to], nil
}
