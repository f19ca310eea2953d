package controllers

import (
	"log"
	"net/http"

	"github.com/denavigator/Brand-app/models"
	"github.com/denavigator/Brand-app/services"
	"github.com/gin-gonic/gin"
)

// Home handles GET / - landing page
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// HowItWorks handles GET /how
func HowItWorks(c *gin.Context) {
	c.HTML(http.StatusOK, "how.html", gin.H{})
}

// Packages handles GET /packages - the package tier listing
func Packages(c *gin.Context) {
	c.HTML(http.StatusOK, "packages.html", gin.H{
		"StarterPrice": services.PriceForPackage(models.PackageStarter),
		"ProPrice":     services.PriceForPackage(models.PackagePro),
		"PremiumPrice": services.PriceForPackage(models.PackagePremium),
	})
}

// OrderForm handles GET /order?package=X - renders the order form with the
// requested package preselected, defaulting to starter
func OrderForm(c *gin.Context) {
	c.HTML(http.StatusOK, "order.html", gin.H{
		"SelectedPackage": c.DefaultQuery("package", models.PackageStarter),
	})
}

// About handles GET /about
func About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{})
}

// Confirmation handles GET /confirmation?status&orderId - shows the order
// the payment provider redirected back for. A missing or unknown order id
// still renders the page, just without order details.
func Confirmation(c *gin.Context) {
	status := c.Query("status")
	orderID := c.Query("orderId")

	var order *models.Order
	if orderID != "" {
		found, err := services.GetOrderStore().GetOrderByID(c.Request.Context(), orderID)
		if err != nil {
			log.Printf("Confirmation lookup failed for order %s: %v", orderID, err)
		} else {
			order = found
		}
	}

	c.HTML(http.StatusOK, "confirmation.html", gin.H{
		"Status": status,
		"Order":  order,
	})
}

// Admin handles GET /admin - lists all orders newest-first
func Admin(c *gin.Context) {
	orders, err := services.GetOrderStore().ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to list orders",
			},
		})
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Orders": orders,
	})
}
