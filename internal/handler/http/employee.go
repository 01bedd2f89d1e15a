package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gpe-labs/payroll-backend-go/internal/domain/employee"
	"github.com/gpe-labs/payroll-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployeesByType(w http.ResponseWriter, r *http.Request)
	GetEmployeeSalary(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func employeeID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	results, err := h.employeeService.GetAll(r.Context())
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(r)
	if !ok {
		response.BadRequest(w, "Employee ID must be an integer", nil)
		return
	}

	result, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "id", result.ID, "pay_type", result.PayType)
	response.Created(w, "Employee created successfully", result)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(r)
	if !ok {
		response.BadRequest(w, "Employee ID must be an integer", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee updated", "id", id)
	response.Success(w, result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(r)
	if !ok {
		response.BadRequest(w, "Employee ID must be an integer", nil)
		return
	}

	deleted, err := h.employeeService.Delete(r.Context(), id)
	if err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}
	if !deleted {
		response.NotFound(w, "Employee not found")
		return
	}

	slog.Info("Employee deleted", "id", id)
	response.NoContent(w)
}

// ListEmployeesByType implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployeesByType(w http.ResponseWriter, r *http.Request) {
	payType := chi.URLParam(r, "payType")

	results, err := h.employeeService.GetByType(r.Context(), payType)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetEmployeeSalary implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployeeSalary(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeID(r)
	if !ok {
		response.BadRequest(w, "Employee ID must be an integer", nil)
		return
	}

	salary, err := h.employeeService.CalculateSalary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.SalaryResponse{EmployeeID: id, Salary: salary})
}
