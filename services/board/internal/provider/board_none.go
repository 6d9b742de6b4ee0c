//go:build !(board_esp_box_3 || board_m5stack_core_s3 || board_m5stack_tab5 || board_m5_atom_s3 || board_esp32_p4_function_ev || board_esp32_s3_lcd_ev || board_esp_bsp_devkit || board_esp_bsp_generic)

package provider

// No board tag given: Selected stays nil. Host-side builds and tests land
// here.
