package metrics

const unknown = "unknown"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown[T ~string](v T) string {
	if v == "" {
		return unknown
	}
	return string(v)
}
