package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

var registerRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Min(1).Max(80).Required(),
	"Email":    z.String().Email().Max(120).Required(),
	"Password": z.String().Min(1).Required(),
	"Role":     z.String(),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	var req RegisterRequest
	if err := registerRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Fleet.User.Register(req.Username, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Min(1).Required(),
	"Password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Fleet.User.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if rs.Issuer == nil {
		respondError(c, errNoIssuer)
		return
	}
	token, err := rs.Issuer.Generate(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": token,
		"user":         user,
	})
}
