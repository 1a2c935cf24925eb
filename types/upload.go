package types

// StoredObject 已上传的对象
type StoredObject struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
