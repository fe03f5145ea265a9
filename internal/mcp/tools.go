package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/storekit/woo-mcp/internal/woo"
)

// registerCoreTools registers the tools that work without any upstream:
// liveness and clock probes. Returns the number of tools registered.
func registerCoreTools(s *server.MCPServer) int {
	s.AddTool(createPingTool(), handlePing())
	s.AddTool(createTimeTool(), handleTime())
	return 2
}

// registerCatalogTools registers the WooCommerce catalog tools, wiring each to
// a handler that calls the REST API via the client. Returns the number of
// tools registered.
func registerCatalogTools(s *server.MCPServer, c *woo.Client) int {
	s.AddTool(createListCategoriesTool(), handleListCategories(c))
	s.AddTool(createSearchProductsTool(), handleSearchProducts(c))
	s.AddTool(createGetProductTool(), handleGetProduct(c))
	s.AddTool(createUpdateProductTool(), handleUpdateProduct(c))
	return 4
}

// --- Tool definitions ---

func createPingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Liveness probe. Returns the literal text 'pong' without contacting the store. Use this to verify the server itself is reachable."),
	)
}

func createTimeTool() mcp.Tool {
	return mcp.NewTool("time",
		mcp.WithDescription("Get the current server time as an ISO-8601 (RFC 3339) UTC timestamp."),
	)
}

func createListCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List product categories from the store. Returns id, name, slug, and product count per category."),
		mcp.WithNumber("per_page", mcp.Description("Results per page (default: 10, max: 100)")),
		mcp.WithNumber("page", mcp.Description("Page number (default: 1)")),
	)
}

func createSearchProductsTool() mcp.Tool {
	return mcp.NewTool("wc_search_products",
		mcp.WithDescription("Search products by keyword. Returns a compact summary per match: id, name, price, permalink, status, stock status, and last modification date."),
		mcp.WithString("q", mcp.Required(), mcp.Description("Search query matched against product names and descriptions")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (default: 10, max: 100)")),
		mcp.WithNumber("page", mcp.Description("Page number (default: 1)")),
	)
}

func createGetProductTool() mcp.Tool {
	return mcp.NewTool("wc_get_product",
		mcp.WithDescription("Get a single product by ID, including its full description, short description, price, and stock status."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Numeric product ID")),
	)
}

func createUpdateProductTool() mcp.Tool {
	return mcp.NewTool("wc_update_product",
		mcp.WithDescription("Update a product. Only the provided fields are changed. Returns the updated product with the description truncated to 200 characters."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Numeric product ID")),
		mcp.WithString("name", mcp.Description("New product name")),
		mcp.WithString("slug", mcp.Description("New URL slug")),
		mcp.WithString("description", mcp.Description("New full description (HTML allowed)")),
		mcp.WithString("short_description", mcp.Description("New short description (HTML allowed)")),
		mcp.WithString("meta_data", mcp.Description("JSON array of {key, value} metadata entries to set")),
	)
}
