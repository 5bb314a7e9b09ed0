package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"DAOKit/internal/shared/config"
	"DAOKit/modules/dao"
	"DAOKit/modules/kit/errx"
)

const (
	OpSave   = "store.mongo.Save"
	OpLoad   = "store.mongo.Load"
	OpDelete = "store.mongo.Delete"
)

const idField = "_id"

// Repository 按角色把实体存进各自的集合：文档是实体的结构化编码，外加 _id = 实体 id。
//
// 约束：
// - 集合名默认等于角色名，可由 MongoDBConfig.Collections 覆盖
// - 读取时 _id 被解码器忽略，实体 id 以文档里的 id 字段为准
type Repository struct {
	db        *mongo.Database
	reg       *dao.Registry
	names     map[string]string
	opTimeout time.Duration
}

func NewRepository(db *mongo.Database, reg *dao.Registry, cfg config.MongoDBConfig) *Repository {
	return &Repository{
		db:        db,
		reg:       dao.Resolve(reg),
		names:     cfg.Collections,
		opTimeout: cfg.OpTimeout,
	}
}

// CollectionName 返回角色对应的集合名。
func (r *Repository) CollectionName(role string) string {
	if name, ok := r.names[role]; ok && name != "" {
		return name
	}
	return role
}

func (r *Repository) collection(op, role string) (*mongo.Collection, error) {
	if r == nil || r.db == nil {
		return nil, errx.ErrUnavailable.WithDataMap(map[string]any{"op": op, "role": role})
	}
	return r.db.Collection(r.CollectionName(role)), nil
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

// Save 以 id 为键整体替换（不存在则插入）。
func (r *Repository) Save(ctx context.Context, role string, obj dao.Object) error {
	if obj == nil {
		return errx.ErrInvalidArgument.WithDataMap(map[string]any{"op": OpSave, "role": role})
	}
	coll, err := r.collection(OpSave, role)
	if err != nil {
		return err
	}
	doc, err := Document(obj, r.reg)
	if err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	id := obj.Base().ID
	_, err = coll.ReplaceOne(ctx, bson.M{idField: id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return wrap(OpSave, role, id, err)
	}
	return nil
}

// Load 按 id 读取并解码成该角色当前绑定的具体类型。
func (r *Repository) Load(ctx context.Context, role, id string) (dao.Object, error) {
	f, ok := r.reg.Lookup(role)
	if !ok {
		return nil, errx.ErrInvalidArgument.WithDataMap(map[string]any{"op": OpLoad, "role": role})
	}
	coll, err := r.collection(OpLoad, role)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	raw, err := coll.FindOne(ctx, bson.M{idField: id}).Raw()
	if err != nil {
		return nil, wrap(OpLoad, role, id, err)
	}
	return f.Unmarshal(raw, r.reg)
}

func (r *Repository) Delete(ctx context.Context, role, id string) error {
	coll, err := r.collection(OpDelete, role)
	if err != nil {
		return err
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := coll.DeleteOne(ctx, bson.M{idField: id})
	if err != nil {
		return wrap(OpDelete, role, id, err)
	}
	if res.DeletedCount == 0 {
		return errx.ErrNotFound.WithDataMap(map[string]any{"op": OpDelete, "role": role, "id": id})
	}
	return nil
}

// Document 返回写入集合的文档：_id 在前，其后是实体的结构化编码。
func Document(obj dao.Object, reg *dao.Registry) (bson.D, error) {
	enc := dao.NewEncoder(reg)
	if err := obj.EncodeFields(enc); err != nil {
		return nil, err
	}
	fields := enc.Document()
	doc := make(bson.D, 0, len(fields)+1)
	doc = append(doc, bson.E{Key: idField, Value: obj.Base().ID})
	return append(doc, fields...), nil
}

func wrap(op, role, id string, err error) error {
	data := map[string]any{"op": op, "role": role, "id": id}
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return errx.ErrNotFound.WithDataMap(data)
	case errors.Is(err, context.DeadlineExceeded):
		return errx.ErrTimeout.WithDataMap(data).WithCause(err)
	default:
		return errx.ErrUnavailable.WithDataMap(data).WithCause(err)
	}
}
