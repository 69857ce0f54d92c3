package transport

import "net/http"

type headersRequest struct {
	Anchor  string `json:"anchor"`
	Headers string `json:"headers"`
	Relayer string `json:"relayer"`
}

func (req headersRequest) parse() (anchor, headers []byte, err error) {
	if anchor, err = parseBytes("anchor", req.Anchor); err != nil {
		return nil, nil, err
	}
	if headers, err = parseBytes("headers", req.Headers); err != nil {
		return nil, nil, err
	}
	return anchor, headers, nil
}

type retargetRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Headers     string `json:"headers"`
	Relayer     string `json:"relayer"`
}

func (req retargetRequest) parse() (start, end, headers []byte, err error) {
	if start, err = parseBytes("period_start", req.PeriodStart); err != nil {
		return nil, nil, nil, err
	}
	if end, err = parseBytes("period_end", req.PeriodEnd); err != nil {
		return nil, nil, nil, err
	}
	if headers, err = parseBytes("headers", req.Headers); err != nil {
		return nil, nil, nil, err
	}
	return start, end, headers, nil
}

func (h *Handler) addHeaders(r *http.Request, _ map[string]string) (any, error) {
	var req headersRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	anchor, headers, err := req.parse()
	if err != nil {
		return nil, err
	}
	res, err := h.relay.AddHeaders(r.Context(), anchor, headers, req.Relayer)
	if err != nil {
		return nil, err
	}
	return newSubmitResponse(res), nil
}

func (h *Handler) addHeadersWithRetarget(r *http.Request, _ map[string]string) (any, error) {
	var req retargetRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	start, end, headers, err := req.parse()
	if err != nil {
		return nil, err
	}
	res, err := h.relay.AddHeadersWithRetarget(r.Context(), start, end, headers, req.Relayer)
	if err != nil {
		return nil, err
	}
	return newSubmitResponse(res), nil
}

func (h *Handler) ownerAddHeaders(r *http.Request, _ map[string]string) (any, error) {
	var req headersRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	anchor, headers, err := req.parse()
	if err != nil {
		return nil, err
	}
	res, err := h.relay.OwnerAddHeaders(r.Context(), bearerToken(r), anchor, headers, req.Relayer)
	if err != nil {
		return nil, err
	}
	return newSubmitResponse(res), nil
}

func (h *Handler) ownerAddHeadersWithRetarget(r *http.Request, _ map[string]string) (any, error) {
	var req retargetRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	start, end, headers, err := req.parse()
	if err != nil {
		return nil, err
	}
	res, err := h.relay.OwnerAddHeadersWithRetarget(r.Context(), bearerToken(r), start, end, headers, req.Relayer)
	if err != nil {
		return nil, err
	}
	return newSubmitResponse(res), nil
}
