package controllers

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/denavigator/Brand-app/models"
	"github.com/denavigator/Brand-app/services"
	"github.com/denavigator/Brand-app/utils"
	"github.com/gin-gonic/gin"
)

// Checkout handles POST /checkout - the order intake workflow.
//
// The order is persisted as pending before the payment session is created,
// so a provider failure leaves a reconcilable record behind. Mockup
// generation is best-effort and never fails the request.
func Checkout(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	product := c.PostForm("product")
	packageType := c.PostForm("packageType")

	// Optional logo upload; absence is a normal path, not an error
	var logoPath *string
	if fileHeader, err := c.FormFile("logo"); err == nil && fileHeader != nil {
		filename, err := utils.SaveUploadedFile(fileHeader, utils.UploadDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UPLOAD_ERROR",
					"message": "Failed to store uploaded logo",
				},
			})
			return
		}
		logoPath = &filename
	}

	order := models.Order{
		Name:        name,
		Email:       email,
		Product:     product,
		PackageType: packageType,
		LogoPath:    logoPath,
		Status:      models.OrderStatusPending,
	}

	// Generate a mockup when a logo was uploaded. Failures are logged and
	// swallowed; the order proceeds without a mockup.
	if logoPath != nil {
		mockupName, err := services.GetMockupService().GenerateMockup(
			filepath.Join(utils.UploadDir, *logoPath))
		if err != nil {
			log.Printf("Mockup generation failed: %v", err)
		} else if mockupName != "" {
			order.MockupPath = &mockupName
		}
	}

	// Persist before contacting the payment provider; a provider failure
	// must leave the pending order in the store
	store := services.GetOrderStore()
	if err := store.CreateOrder(c.Request.Context(), &order); err != nil {
		log.Printf("Failed to persist order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create order",
			},
		})
		return
	}

	// Best-effort mirror of the stored files; never fails the request
	mirrored := []string{}
	if order.LogoPath != nil {
		mirrored = append(mirrored, *order.LogoPath)
	}
	if order.MockupPath != nil {
		mirrored = append(mirrored, *order.MockupPath)
	}
	services.MirrorUploads(c.Request.Context(), utils.UploadDir, mirrored...)

	sessionURL, err := services.GetCheckoutService().CreateSession(c.Request.Context(), &order)
	if err != nil {
		// The order stays pending in the store; the admin listing is the
		// reconciliation surface for these
		log.Printf("Checkout session creation failed for order %s: %v", order.ID, err)
		c.String(http.StatusInternalServerError, "Payment session error")
		return
	}

	c.Redirect(http.StatusSeeOther, sessionURL)
}
