package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Item 是 Book 的精简投影，购物车里只存这三个字段
type Item struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// Store 每个用户一个购物车，整体序列化成 JSON 存 Redis。
// 每次变更都立刻回写，下一次读取必然看到。
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store { return &Store{rdb: rdb} }

func key(userID string) string { return fmt.Sprintf("cart:items:%s", userID) }

func (s *Store) Items(ctx context.Context, userID string) ([]Item, error) {
	b, err := s.rdb.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Add 按 ID 幂等：已存在时不重复加入，返回 false
func (s *Store) Add(ctx context.Context, userID string, it Item) (bool, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, existing := range items {
		if existing.ID == it.ID {
			return false, nil
		}
	}
	items = append(items, it)
	if err := s.save(ctx, userID, items); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Remove(ctx context.Context, userID, bookID string) ([]Item, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != bookID {
			kept = append(kept, it)
		}
	}
	if err := s.save(ctx, userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear 删整个 key。“Confirm Rent” 只做这个，不碰任何 Book。
func (s *Store) Clear(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, key(userID)).Err()
}

func (s *Store) save(ctx context.Context, userID string, items []Item) error {
	b, _ := json.Marshal(items)
	return s.rdb.Set(ctx, key(userID), b, 0).Err()
}
