package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsCreated counts posts accepted by the create handler.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kindling_posts_created_total",
		Help: "Total number of posts created",
	})

	// CommentsCreated counts comments accepted by the create handler.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kindling_comments_created_total",
		Help: "Total number of comments created",
	})

	// VotesTotal counts vote operations by target entity and direction.
	VotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kindling_votes_total",
		Help: "Total number of vote operations by target and direction",
	}, []string{"target", "direction"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kindling_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
