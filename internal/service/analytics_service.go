package service

import (
	"context"
	"time"
)

const (
	dayLayout    = "2006-01-02"
	bucketLayout = "2006-01-02 15:04:05"
)

type AnalyticsService struct {
	likes LikeRepo
}

func NewAnalyticsService(likes LikeRepo) *AnalyticsService {
	return &AnalyticsService{likes: likes}
}

// LikesPerDay 从 dateFrom 起按自然日滚动，统计调用方每天的点赞数。
// 窗口是半开区间 [cur, cur+24h)，边界上的点赞只会落进一个桶。
// dateTo 取到当天 23:59:59，日期格式错误原样上抛。
func (s *AnalyticsService) LikesPerDay(ctx context.Context, userID uint64, dateFrom, dateTo string) (map[string]int64, error) {
	from, err := time.Parse(dayLayout, dateFrom)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(dayLayout, dateTo)
	if err != nil {
		return nil, err
	}
	end := to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	result := make(map[string]int64)
	for cur := from; cur.Before(end); cur = cur.Add(24 * time.Hour) {
		next := cur.Add(24 * time.Hour)
		count, err := s.likes.CountBetween(ctx, userID, cur, next)
		if err != nil {
			return nil, err
		}
		result[cur.Format(bucketLayout)+" - "+next.Format(bucketLayout)] = count
	}
	return result, nil
}
