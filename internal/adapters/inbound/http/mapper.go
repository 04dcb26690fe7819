package http

import (
	"errors"
	"fmt"

	"github.com/cleitonmarx/todolists/internal/adapters/inbound/http/rest"
	"github.com/cleitonmarx/todolists/internal/domain"
)

func toError(err error) rest.ErrorResp {
	var (
		vErr  *domain.ValidationErr
		nfErr *domain.NotFoundErr
	)
	switch {
	case errors.As(err, &vErr):
		return rest.NewErrorResp(rest.BADREQUEST, vErr.Error())
	case errors.As(err, &nfErr):
		return rest.NewErrorResp(rest.NOTFOUND, nfErr.Error())
	default:
		return rest.NewErrorResp(rest.INTERNALERROR, "internal server error")
	}
}

func badRequest(format string, args ...any) rest.ErrorResp {
	return rest.NewErrorResp(rest.BADREQUEST, fmt.Sprintf(format, args...))
}

func toList(l domain.List) rest.List {
	return rest.List{
		Id:        l.ID,
		Name:      l.Name,
		Removable: l.Removable,
	}
}

func toTask(t domain.Task) rest.Task {
	return rest.Task{
		Id:        t.ID,
		ListId:    t.ListID,
		Text:      t.Text,
		Completed: t.Completed,
		Touched:   t.Touched.UnixMilli(),
	}
}
