package userValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ewallet/middleware"
	"ewallet/models"
)

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// AdminCreateRequest is the validated admin user-creation payload.
type AdminCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// AdminCreate validates the admin create-user request
func AdminCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AdminCreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}
		if reqData.Email == "" || !isValidEmail(reqData.Email) {
			errors["email"] = "Invalid email!"
		}
		if len(strings.TrimSpace(reqData.Password)) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if reqData.Role == "" {
			reqData.Role = string(models.RoleUser)
		}
		if reqData.Role != string(models.RoleUser) && reqData.Role != string(models.RoleAdmin) {
			errors["role"] = "Role must be USER or ADMIN!"
		}

		if reqData.Status == "" {
			reqData.Status = string(models.UserStatusActive)
		}
		if reqData.Status != string(models.UserStatusActive) && reqData.Status != string(models.UserStatusSuspended) {
			errors["status"] = "Status must be ACTIVE or SUSPENDED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminCreate", reqData)
		return c.Next()
	}
}
