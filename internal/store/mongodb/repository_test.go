package mongodb

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"DAOKit/internal/shared/config"
	"DAOKit/modules/dao"
	"DAOKit/modules/kit/errx"
)

func TestCollectionName_配置覆盖角色名(t *testing.T) {
	r := NewRepository(nil, nil, config.MongoDBConfig{Collections: map[string]string{"place": "places"}})
	if got := r.CollectionName("place"); got != "places" {
		t.Fatalf("期望 places, got=%s", got)
	}
	if got := r.CollectionName("account"); got != "account" {
		t.Fatalf("期望默认使用角色名, got=%s", got)
	}
}

func TestDocument_id在最前(t *testing.T) {
	a := dao.NewAccountWithID("a1")
	doc, err := Document(a, dao.NewRegistry())
	if err != nil {
		t.Fatalf("Document 失败: %v", err)
	}
	if len(doc) < 2 || doc[0].Key != "_id" || doc[0].Value != "a1" {
		t.Fatalf("期望第一个字段为 _id=a1, got=%v", doc[:1])
	}
	if doc[1].Key != "id" {
		t.Fatalf("期望随后是实体编码, got=%s", doc[1].Key)
	}
}

func TestRepository_未连接时返回不可用(t *testing.T) {
	r := NewRepository(nil, dao.NewRegistry(), config.MongoDBConfig{})
	err := r.Save(context.Background(), "account", dao.NewAccount())
	if !errors.Is(err, errx.ErrUnavailable) {
		t.Fatalf("期望 SERVICE_UNAVAILABLE, got=%v", err)
	}
	if _, err := r.Load(context.Background(), "nope", "x"); !errors.Is(err, errx.ErrInvalidArgument) {
		t.Fatalf("期望未知角色返回 INVALID_ARGUMENT, got=%v", err)
	}
	if err := r.Save(context.Background(), "account", nil); !errors.Is(err, errx.ErrInvalidArgument) {
		t.Fatalf("期望 nil 实体返回 INVALID_ARGUMENT, got=%v", err)
	}
}

func TestWrap_按驱动错误分类(t *testing.T) {
	if err := wrap(OpLoad, "place", "p1", mongo.ErrNoDocuments); !errors.Is(err, errx.ErrNotFound) {
		t.Fatalf("期望 NOT_FOUND, got=%v", err)
	}
	if err := wrap(OpSave, "place", "p1", context.DeadlineExceeded); !errors.Is(err, errx.ErrTimeout) {
		t.Fatalf("期望 TIMEOUT, got=%v", err)
	}
	if err := wrap(OpSave, "place", "p1", errors.New("dial tcp")); !errors.Is(err, errx.ErrUnavailable) {
		t.Fatalf("期望 SERVICE_UNAVAILABLE, got=%v", err)
	}
}
