package select_products

// SelectProductsRequest HTTP request model
type SelectProductsRequest struct {
	ProductIDs []string `json:"productIds"`
	Turns      int      `json:"turns"`
	Occupants  int      `json:"occupants"`
}
