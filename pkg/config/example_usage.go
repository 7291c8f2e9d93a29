package config

// Example usage of the configuration system:
//
// 1. Load configuration with all sources:
//
//     cfg, err := config.Load("", nil)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 2. Load with a custom config file:
//
//     cfg, err := config.Load("/path/to/config.yaml", nil)
//
// 3. Load with command line flags:
//
//     flags := map[string]interface{}{
//         "output":    "/home/me/Pictures",
//         "log-level": "debug",
//     }
//     cfg, err := config.Load("", flags)
//
// Example config file (.apodwall.yaml):
//
//     apod:
//       domain: https://apod.nasa.gov
//     http:
//       timeout: 20s
//       insecure_skip_verify: true
//     output:
//       directory: /home/me/Pictures
//       image_file: nasa_image.jpg
//       fallback_file: nasa_image_fallback.jpg
//       save_metadata: true
//     notifications:
//       enabled: false
//     logging:
//       level: info
//
// Environment variables (APODWALL_ prefix, also read from .env):
//
//     APODWALL_DOMAIN, APODWALL_HTTP_TIMEOUT, APODWALL_USER_AGENT,
//     APODWALL_INSECURE_SKIP_VERIFY, APODWALL_OUTPUT_DIR, APODWALL_IMAGE_FILE,
//     APODWALL_FALLBACK_FILE, APODWALL_SAVE_METADATA,
//     APODWALL_NOTIFICATIONS_ENABLED, APODWALL_LOG_LEVEL, APODWALL_LOG_FILE
