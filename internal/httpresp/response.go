package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data    []T    `json:"data"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// ListWithMessage: les llistes buides no són error, però porten un avís
// explícit ("cap reserva trobada") en lloc d'un array pelat.
func ListWithMessage[T any](c *gin.Context, data []T, emptyMessage string) {
	resp := ListResponse[T]{
		Data:  data,
		Total: len(data),
	}
	if len(data) == 0 {
		resp.Message = emptyMessage
	}
	c.JSON(200, resp)
}
