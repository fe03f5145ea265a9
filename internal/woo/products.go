package woo

// Category is a product category as returned by /products/categories.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Product holds the WooCommerce product fields this server cares about.
// The API returns far more; everything else is dropped at decode time.
type Product struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Permalink        string `json:"permalink"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	Price            string `json:"price"`
	Status           string `json:"status"`
	StockStatus      string `json:"stock_status"`
	DateModified     string `json:"date_modified"`
}
