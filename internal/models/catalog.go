package models

// Category groups dishes on the menu.
//
// JSON field names match the column names. Fields supplied by clients are
// pointers so that an omitted field reaches the database as NULL and the
// schema decides whether that is acceptable.
type Category struct {
	ID          int64   `json:"id" db:"id"`
	Name        *string `json:"nombre" db:"nombre"`
	Description *string `json:"descripcion" db:"descripcion"`
}

// Dish is a menu item belonging to a Category
type Dish struct {
	ID          int64   `json:"id" db:"id"`
	Name        *string `json:"nombre" db:"nombre"`
	Description *string `json:"descripcion" db:"descripcion"`
	Price       *Money  `json:"precio" db:"precio"`
	CategoryID  *Int    `json:"categoria_id" db:"categoria_id"`
}

// Ingredient can be linked to any number of dishes
type Ingredient struct {
	ID          int64   `json:"id" db:"id"`
	Name        *string `json:"nombre" db:"nombre"`
	Description *string `json:"descripcion" db:"descripcion"`
}

// DishIngredient is one row of the platillos_ingredientes link table
type DishIngredient struct {
	DishID       int64 `json:"platillo_id" db:"platillo_id"`
	IngredientID *Int  `json:"ingrediente_id" db:"ingrediente_id"`
}
