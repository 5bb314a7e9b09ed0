package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"DAOKit/internal/shared/config"
	"DAOKit/modules/kit/errx"
)

const OpOpen = "store.mongo.Open"

// Open 建立连接并 Ping 一次；失败时断开并返回 SERVICE_UNAVAILABLE。
func Open(ctx context.Context, cfg config.MongoDBConfig, l *zap.Logger) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, errx.ErrInvalidArgument.WithDataMap(map[string]any{"op": OpOpen, "reason": "mongodb uri is empty"})
	}
	if l == nil {
		l = zap.NewNop()
	}

	timeout := time.Duration(cfg.ConnectTimeoutS) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI).SetConnectTimeout(timeout))
	if err != nil {
		return nil, errx.ErrUnavailable.WithData("op", OpOpen).WithCause(err)
	}
	if err = client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errx.ErrUnavailable.WithData("op", OpOpen).WithCause(err)
	}

	l.Info("open mongodb success",
		zap.String("uri", cfg.URI),
		zap.String("database", cfg.Database),
	)
	return client, nil
}
