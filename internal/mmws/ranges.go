package mmws

import (
	"context"
	"strconv"
)

// GetRanges returns the ranges of the current address space.
// A positive limit is passed to the server; there is no paging beyond it.
func (c *Client) GetRanges(ctx context.Context, limit int) (*RangeList, error) {
	query := ""
	if limit > 0 {
		query = "limit=" + strconv.Itoa(limit)
	}

	var list RangeList
	if err := c.Get(ctx, "Ranges", query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
