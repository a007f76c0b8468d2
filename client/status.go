package client

import (
	"context"

	"github.com/xxxsen/simpy/model"
)

func decodeStatus(doc string) (model.OperationStatus, error) {
	codes, err := collect[string](doc, "code")
	if err != nil {
		return model.OperationStatus{}, err
	}
	messages, err := collect[string](doc, "message")
	if err != nil {
		return model.OperationStatus{}, err
	}
	var st model.OperationStatus
	if len(codes) > 0 {
		code, err := atoi("code", codes[len(codes)-1])
		if err != nil {
			return model.OperationStatus{}, err
		}
		st.Code = model.StatusCode(code)
		st.Reported = true
	}
	if len(messages) > 0 {
		st.Message = messages[len(messages)-1]
	}
	return st, nil
}

func (c *Client) status(ctx context.Context, ep endpoint, params Params) (Result[model.OperationStatus], error) {
	return call(ctx, c, ep, params, model.OperationStatus{}, decodeStatus)
}
