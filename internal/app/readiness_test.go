package app

import (
	"context"
	"fmt"
	"testing"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeRedisResult struct{ err error }

func (f fakeRedisResult) Err() error { return f.err }

type fakeRedisClient struct{ err error }

func (f fakeRedisClient) Ping(context.Context) RedisPingResult { return fakeRedisResult{err: f.err} }

func TestBuildReadinessChecks(t *testing.T) {
	boom := fmt.Errorf("down")

	tests := []struct {
		name    string
		pool    Pinger
		rdb     RedisClient
		broker  KafkaPinger
		wantErr [3]bool
	}{
		{"all healthy", fakePinger{}, fakeRedisClient{}, fakePinger{}, [3]bool{false, false, false}},
		{"nil deps all fail", nil, nil, nil, [3]bool{true, true, true}},
		{"db down", fakePinger{err: boom}, fakeRedisClient{}, fakePinger{}, [3]bool{true, false, false}},
		{"redis down", fakePinger{}, fakeRedisClient{err: boom}, fakePinger{}, [3]bool{false, true, false}},
		{"broker down", fakePinger{}, fakeRedisClient{}, fakePinger{err: boom}, [3]bool{false, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbCheck, redisCheck, kafkaCheck := BuildReadinessChecks(tt.pool, tt.rdb, tt.broker)
			checks := []func(context.Context) error{dbCheck, redisCheck, kafkaCheck}
			for i, check := range checks {
				err := check(context.Background())
				if tt.wantErr[i] && err == nil {
					t.Errorf("check %d: expected error, got none", i)
				}
				if !tt.wantErr[i] && err != nil {
					t.Errorf("check %d: unexpected error: %v", i, err)
				}
			}
		})
	}
}
