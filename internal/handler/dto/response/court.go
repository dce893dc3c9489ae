package response

import (
	"strconv"
	"time"

	"padel-club/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CourtResponse struct {
	ID          int64     `json:"idCancha"`
	Number      int       `json:"numero"`
	Category    string    `json:"tipo"`
	Description string    `json:"descripcion"`
	Active      bool      `json:"activa"`
	Label       string    `json:"nombre"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromCourtView(v *queries.CourtView) (*CourtResponse, error) {
	var resp CourtResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	resp.Label = courtLabel(v.Number)
	return &resp, nil
}

func FromCourtList(views []*queries.CourtView) ([]*CourtResponse, error) {
	resp := make([]*CourtResponse, 0, len(views))
	for _, v := range views {
		r, err := FromCourtView(v)
		if err != nil {
			return nil, err
		}
		resp = append(resp, r)
	}
	return resp, nil
}

func courtLabel(number int) string {
	return "Cancha " + strconv.Itoa(number)
}
