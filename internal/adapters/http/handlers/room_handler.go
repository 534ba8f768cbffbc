package handlers

import (
	"io"

	"rentacuartos/internal/core/services"
	"rentacuartos/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RoomHandler handles room endpoints plus the furniture and images attached
// to a room
type RoomHandler struct {
	roomService          *services.RoomService
	roomFurnitureService *services.RoomFurnitureService
	imageService         *services.ImageService
	maintenanceService   *services.MaintenanceService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(
	roomService *services.RoomService,
	roomFurnitureService *services.RoomFurnitureService,
	imageService *services.ImageService,
	maintenanceService *services.MaintenanceService,
) *RoomHandler {
	return &RoomHandler{
		roomService:          roomService,
		roomFurnitureService: roomFurnitureService,
		imageService:         imageService,
		maintenanceService:   maintenanceService,
	}
}

// List lists all rooms
func (h *RoomHandler) List(c *fiber.Ctx) error {
	rooms, err := h.roomService.List(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Cuartos recuperados", fiber.Map{"rooms": rooms})
}

// Get gets a room by ID
func (h *RoomHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	room, err := h.roomService.GetByID(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if room == nil {
		return response.NotFound(c, "Cuarto no encontrado")
	}

	return response.Success(c, "Cuarto recuperado", fiber.Map{"room": room})
}

// Create creates a new room
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var input services.RoomInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	room, err := h.roomService.Create(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Cuarto creado", fiber.Map{"room": room})
}

// Update updates a room
func (h *RoomHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.RoomInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	room, err := h.roomService.Update(c.Context(), id, &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Cuarto actualizado", fiber.Map{"room": room})
}

// ChangeStatusRequest represents a status change payload
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeStatus changes only the room status
func (h *RoomHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	room, err := h.roomService.ChangeStatus(c.Context(), id, req.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Estado del cuarto actualizado", fiber.Map{"room": room})
}

// Delete deletes a room
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.roomService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Cuarto eliminado", nil)
}

// ============================================================
// Room furniture
// ============================================================

// ListFurniture lists the furniture registered in one room
func (h *RoomHandler) ListFurniture(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	items, err := h.roomFurnitureService.ListByRoom(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Muebles del cuarto recuperados", fiber.Map{"furniture": items})
}

// AssignFurniture registers a catalog item in the room
func (h *RoomHandler) AssignFurniture(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var input services.RoomFurnitureInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}
	input.RoomID = id

	item, err := h.roomFurnitureService.Assign(c.Context(), &input)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Mueble registrado en el cuarto", fiber.Map{"furniture": item})
}

// UpdateFurnitureRequest represents a furniture assignment update payload
type UpdateFurnitureRequest struct {
	Quantity  int    `json:"quantity"`
	Condition string `json:"condition,omitempty"`
}

// UpdateFurniture changes quantity and condition of an assignment
func (h *RoomHandler) UpdateFurniture(c *fiber.Ctx) error {
	furnitureID, err := parseParamID(c, "furnitureId")
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req UpdateFurnitureRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	item, err := h.roomFurnitureService.Update(c.Context(), furnitureID, req.Quantity, req.Condition)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Mueble del cuarto actualizado", fiber.Map{"furniture": item})
}

// QuantityDeltaRequest carries the units to add or remove
type QuantityDeltaRequest struct {
	Delta int `json:"delta"`
}

// IncrementFurniture adds units to an assignment
func (h *RoomHandler) IncrementFurniture(c *fiber.Ctx) error {
	furnitureID, err := parseParamID(c, "furnitureId")
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req QuantityDeltaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	item, err := h.roomFurnitureService.IncrementQuantity(c.Context(), furnitureID, req.Delta)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Cantidad incrementada", fiber.Map{"furniture": item})
}

// DecrementFurniture removes units from an assignment
func (h *RoomHandler) DecrementFurniture(c *fiber.Ctx) error {
	furnitureID, err := parseParamID(c, "furnitureId")
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req QuantityDeltaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la peticion invalido")
	}

	item, err := h.roomFurnitureService.DecrementQuantity(c.Context(), furnitureID, req.Delta)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Cantidad decrementada", fiber.Map{"furniture": item})
}

// RemoveFurniture removes an assignment from the room
func (h *RoomHandler) RemoveFurniture(c *fiber.Ctx) error {
	furnitureID, err := parseParamID(c, "furnitureId")
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.roomFurnitureService.Delete(c.Context(), furnitureID); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Mueble retirado del cuarto", nil)
}

// ============================================================
// Room images
// ============================================================

// ListImages lists the images attached to one room
func (h *RoomHandler) ListImages(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	images, err := h.imageService.ListByRoom(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Imagenes recuperadas", fiber.Map{"images": images})
}

// UploadImage stores a multipart image file against the room
func (h *RoomHandler) UploadImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "El archivo de imagen es obligatorio")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "No se pudo leer el archivo")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "No se pudo leer el archivo")
	}

	img, err := h.imageService.Upload(c.Context(), id, fileHeader.Filename, data)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Created(c, "Imagen guardada", fiber.Map{"image": img})
}

// DeleteImage removes an image from the room
func (h *RoomHandler) DeleteImage(c *fiber.Ctx) error {
	imageID, err := parseParamID(c, "imageId")
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.imageService.Delete(c.Context(), imageID); err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Imagen eliminada", nil)
}

// ListMaintenance lists the maintenance tickets reported against one room
func (h *RoomHandler) ListMaintenance(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	tickets, err := h.maintenanceService.ListByRoom(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "Mantenimientos recuperados", fiber.Map{"maintenances": tickets})
}
