// Package reports renders the admin parcel listing into downloadable
// documents. Each renderer writes a complete file to the supplied writer;
// content-type and attachment headers are the transport layer's concern.
package reports

import (
	"time"

	"parcelhub/internal/core/application/usecases/queries"
)

// header is the column set shared by every report format.
var header = []string{
	"Parcel ID",
	"Customer",
	"Agent",
	"Pickup Address",
	"Delivery Address",
	"Size",
	"COD",
	"Status",
	"Booked At",
}

// row flattens one listing entry into report cells.
func row(p queries.AdminParcelQueryResponse) []string {
	cod := "No"
	if p.CashOnDelivery {
		cod = "Yes"
	}

	agent := p.AgentName
	if p.AgentID == nil {
		agent = "Unassigned"
	}

	return []string{
		p.ID.String(),
		p.CustomerName,
		agent,
		p.PickupAddress,
		p.DeliveryAddress,
		p.Size,
		cod,
		p.Status,
		p.CreatedAt.Format(time.RFC3339),
	}
}
