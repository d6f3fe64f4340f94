package config

import (
	"log"
	"os"
	"strconv"
)

// CloudinaryConfig identifies the image-hosting account that room and
// avatar URLs point at. The core never calls Cloudinary; upload flows
// live outside this repository.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// VNPayConfig carries the payment-gateway credentials consumed by the
// checkout flow outside this core. No protocol logic here.
type VNPayConfig struct {
	TmnCode    string
	HashSecret string
	URL        string
}

type Config struct {
	SecretKey  string
	PageSize   int
	Cloudinary CloudinaryConfig
	VNPay      VNPayConfig
}

// Load reads process configuration from the environment. Secrets have no
// baked-in defaults; they must come from the environment or .env.
func Load() *Config {
	pageSize, err := strconv.Atoi(envOrDefault("PAGE_SIZE", "4"))
	if err != nil {
		log.Printf("⚠️  invalid PAGE_SIZE, falling back to 4: %v", err)
		pageSize = 4
	}

	return &Config{
		SecretKey: os.Getenv("SECRET_KEY"),
		PageSize:  pageSize,
		Cloudinary: CloudinaryConfig{
			CloudName: envOrDefault("CLOUDINARY_CLOUD_NAME", "dg1zsnywc"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		VNPay: VNPayConfig{
			TmnCode:    os.Getenv("VNP_TMN_CODE"),
			HashSecret: os.Getenv("VNP_HASH_SECRET"),
			URL:        envOrDefault("VNP_URL", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"),
		},
	}
}
