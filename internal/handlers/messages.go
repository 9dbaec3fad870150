package handlers

// Messages are the static error texts returned when an operation fails
type Messages struct {
	List   string
	Create string
}

var (
	CategoryMessages = Messages{
		List:   "Error al obtener las categorías",
		Create: "Error al agregar la categoría",
	}
	DishMessages = Messages{
		List:   "Error al obtener los platillos",
		Create: "Error al agregar el platillo",
	}
	IngredientMessages = Messages{
		List:   "Error al obtener los ingredientes",
		Create: "Error al agregar el ingrediente",
	}
	DishIngredientMessages = Messages{
		List:   "Error al obtener los ingredientes del platillo",
		Create: "Error al agregar el ingrediente al platillo",
	}
	CustomerMessages = Messages{
		List:   "Error al obtener los clientes",
		Create: "Error al agregar el cliente",
	}
	OrderMessages = Messages{
		List:   "Error al obtener las órdenes",
		Create: "Error al agregar la orden",
	}
	PaymentMessages = Messages{
		List:   "Error al obtener los pagos",
		Create: "Error al agregar el pago",
	}
)

const (
	statusMessage   = "Servidor funcionando correctamente"
	notFoundMessage = "not found"
)
