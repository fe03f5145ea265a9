package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/storekit/woo-mcp/internal/woo"
)

// descriptionLimit is the character budget for descriptions returned by
// wc_update_product; longer values are cut and marked with an ellipsis.
const descriptionLimit = 200

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error encoding result: %v", err))
	}
	return textResult(string(data))
}

// pagination reads per_page/page from the request, clamped to sane bounds.
func pagination(request mcp.CallToolRequest) (perPage, page int) {
	perPage = request.GetInt("per_page", 10)
	if perPage < 1 {
		perPage = 1
	}
	if perPage > 100 {
		perPage = 100
	}
	page = request.GetInt("page", 1)
	if page < 1 {
		page = 1
	}
	return perPage, page
}

// truncateDescription cuts s to the description limit, appending a single
// ellipsis marker when anything was removed.
func truncateDescription(s string) string {
	r := []rune(s)
	if len(r) <= descriptionLimit {
		return s
	}
	return string(r[:descriptionLimit]) + "…"
}

// --- Per-tool projections ---
// Each tool reshapes the upstream response into a small allow-list of fields;
// the projection is deliberately local to its handler rather than generic.

type productSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Permalink    string `json:"permalink"`
	Status       string `json:"status"`
	StockStatus  string `json:"stock_status"`
	DateModified string `json:"date_modified"`
}

type productDetail struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Permalink        string `json:"permalink"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	Price            string `json:"price"`
	StockStatus      string `json:"stock_status"`
}

type productUpdateResult struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Permalink        string `json:"permalink"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	DateModified     string `json:"date_modified"`
}

// --- Handlers ---

func handlePing() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult("pong"), nil
	}
}

func handleTime() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(time.Now().UTC().Format(time.RFC3339)), nil
	}
}

func handleListCategories(c *woo.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		perPage, page := pagination(request)

		var categories []woo.Category
		path := fmt.Sprintf("/products/categories?per_page=%d&page=%d", perPage, page)
		if err := c.Get(ctx, path, &categories); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(categories) > perPage {
			categories = categories[:perPage]
		}
		return jsonResult(categories), nil
	}
}

func handleSearchProducts(c *woo.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := request.RequireString("q")
		if err != nil {
			return errorResult("Error: q parameter is required"), nil
		}
		perPage, page := pagination(request)

		var products []woo.Product
		path := fmt.Sprintf("/products?search=%s&per_page=%d&page=%d", url.QueryEscape(q), perPage, page)
		if err := c.Get(ctx, path, &products); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		summaries := make([]productSummary, 0, len(products))
		for _, p := range products {
			summaries = append(summaries, productSummary{
				ID:           p.ID,
				Name:         p.Name,
				Price:        p.Price,
				Permalink:    p.Permalink,
				Status:       p.Status,
				StockStatus:  p.StockStatus,
				DateModified: p.DateModified,
			})
		}
		return jsonResult(summaries), nil
	}
}

func handleGetProduct(c *woo.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return errorResult("Error: id parameter is required"), nil
		}

		var product woo.Product
		if err := c.Get(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return jsonResult(productDetail{
			ID:               product.ID,
			Name:             product.Name,
			Permalink:        product.Permalink,
			Description:      product.Description,
			ShortDescription: product.ShortDescription,
			Price:            product.Price,
			StockStatus:      product.StockStatus,
		}), nil
	}
}

func handleUpdateProduct(c *woo.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireInt("id")
		if err != nil {
			return errorResult("Error: id parameter is required"), nil
		}

		updates := map[string]interface{}{}
		for _, field := range []string{"name", "slug", "description", "short_description"} {
			if v := request.GetString(field, ""); v != "" {
				updates[field] = v
			}
		}
		if raw := request.GetString("meta_data", ""); raw != "" {
			var metaData []map[string]interface{}
			if err := json.Unmarshal([]byte(raw), &metaData); err != nil {
				return errorResult("Error: meta_data must be a JSON array of {key, value} objects"), nil
			}
			updates["meta_data"] = metaData
		}
		if len(updates) == 0 {
			return errorResult("Error: no fields to update"), nil
		}

		var product woo.Product
		if err := c.Put(ctx, fmt.Sprintf("/products/%d", id), updates, &product); err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return jsonResult(productUpdateResult{
			ID:               product.ID,
			Name:             product.Name,
			Permalink:        product.Permalink,
			ShortDescription: product.ShortDescription,
			Description:      truncateDescription(product.Description),
			DateModified:     product.DateModified,
		}), nil
	}
}
