package request

type TokenRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	APIKey     string `json:"api_key" binding:"required"`
}
