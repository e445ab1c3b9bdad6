package http

import (
	"time"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/parcel"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type bookParcelRequest struct {
	PickupAddress   string `json:"pickupAddress"`
	DeliveryAddress string `json:"deliveryAddress"`
	Size            string `json:"size"`
	CashOnDelivery  bool   `json:"cod"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type assignAgentRequest struct {
	AgentID string `json:"agentId"`
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

type parcelResponse struct {
	ID              string    `json:"id"`
	Customer        string    `json:"customer"`
	Agent           string    `json:"agent,omitempty"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Size            string    `json:"size"`
	CashOnDelivery  bool      `json:"cod"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type adminParcelResponse struct {
	parcelResponse
	CustomerName string `json:"customerName"`
	AgentName    string `json:"agentName,omitempty"`
}

func parcelFromAggregate(p *parcel.Parcel) parcelResponse {
	resp := parcelResponse{
		ID:              p.ID().String(),
		Customer:        p.Customer().String(),
		PickupAddress:   p.PickupAddress(),
		DeliveryAddress: p.DeliveryAddress(),
		Size:            p.Size(),
		CashOnDelivery:  p.CashOnDelivery(),
		Status:          p.Status().String(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
	if agent := p.Agent(); agent != nil {
		resp.Agent = agent.String()
	}
	return resp
}

func parcelFromReadModel(p queries.ParcelQueryResponse) parcelResponse {
	resp := parcelResponse{
		ID:              p.ID.String(),
		Customer:        p.CustomerID.String(),
		PickupAddress:   p.PickupAddress,
		DeliveryAddress: p.DeliveryAddress,
		Size:            p.Size,
		CashOnDelivery:  p.CashOnDelivery,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.AgentID != nil {
		resp.Agent = p.AgentID.String()
	}
	return resp
}

func parcelFromAdminReadModel(p queries.AdminParcelQueryResponse) adminParcelResponse {
	resp := adminParcelResponse{
		parcelResponse: parcelResponse{
			ID:              p.ID.String(),
			Customer:        p.CustomerID.String(),
			PickupAddress:   p.PickupAddress,
			DeliveryAddress: p.DeliveryAddress,
			Size:            p.Size,
			CashOnDelivery:  p.CashOnDelivery,
			Status:          p.Status,
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.UpdatedAt,
		},
		CustomerName: p.CustomerName,
		AgentName:    p.AgentName,
	}
	if p.AgentID != nil {
		resp.Agent = p.AgentID.String()
	}
	return resp
}

func userFromReadModel(a queries.AccountQueryResponse) userResponse {
	return userResponse{
		ID:    a.ID.String(),
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}
