package tips

type Tip struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tips  []Tip  `json:"tips"`
}

// Categories returns the static tip catalogue in display order.
func Categories() []Category {
	return categories
}
