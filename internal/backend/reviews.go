package backend

import (
	"context"
	"strings"

	"careline-chatbot/pkg"
)

// NoFeedback is the excerpt returned when a doctor has no reviews.
const NoFeedback = "No feedback"

// maxExcerptComments caps how many review comments make it into the excerpt.
const maxExcerptComments = 3

// AggregateReviews computes the average rating and a short feedback excerpt
// for a doctor.  The average is the arithmetic mean of all ratings (0 with no
// reviews); the excerpt joins the first three comments in backend order.
// Backend failures degrade to the no-review result.
func (c *Client) AggregateReviews(ctx context.Context, doctorID int) (float64, string) {
	reviews, err := c.ListReviews(ctx, doctorID)
	if err != nil || len(reviews) == 0 {
		return 0, NoFeedback
	}
	return summarizeReviews(reviews)
}

func summarizeReviews(reviews []pkg.Review) (float64, string) {
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))

	n := len(reviews)
	if n > maxExcerptComments {
		n = maxExcerptComments
	}
	comments := make([]string, 0, n)
	for _, r := range reviews[:n] {
		comments = append(comments, r.Comment)
	}
	return avg, strings.Join(comments, ", ")
}
