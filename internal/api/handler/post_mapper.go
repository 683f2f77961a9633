package handler

import (
	"github.com/kosaboard/board-api/internal/core/ports"
)

func toPostSummaryResponses(feed []ports.PostSummary) []postSummaryResponse {
	out := make([]postSummaryResponse, len(feed))
	for i, s := range feed {
		out[i] = postSummaryResponse{
			ID:         s.ID,
			Title:      s.Title,
			AuthorName: s.AuthorName,
			CreatedAt:  s.CreatedAt,
		}
	}
	return out
}

func toPostDetailResponse(d *ports.PostDetail) postDetailResponse {
	return postDetailResponse{
		ID:             d.ID,
		Title:          d.Title,
		Content:        d.Content,
		AuthorID:       d.AuthorID,
		AuthorUsername: d.AuthorUsername,
		AuthorName:     d.AuthorName,
		CreatedAt:      d.CreatedAt,
	}
}
