package asset

// DefaultConfig is the built-in configuration, written out by --dump-config
// and parsed before any user file so every field has a value
const DefaultConfig = `
# === Animation ===
[animation]
pixels_per_second = 320
millis_per_alpha = 640
millis_per_scale = 456
immediate_ticks = 3

# === List input ===
[input]
millis_per_input = 144
min_millis_per_input = 48
repeat_decel = 96
single_mode = false
hold_window_ms = 80

[list]
visible_range = 1
selected_color = "#ffff00"

# === Bindings ===
[keys.horizontal]
next = ["right"]
previous = ["left"]
action = ["enter"]
cancel = ["backspace"]
next_buttons = ["dpad_right", "left_stick_right"]
previous_buttons = ["dpad_left", "left_stick_left"]
action_buttons = ["a"]
cancel_buttons = ["b"]

[keys.vertical]
next = ["down"]
previous = ["up"]
action = ["enter"]
cancel = ["backspace"]
next_buttons = ["dpad_down", "left_stick_down"]
previous_buttons = ["dpad_up", "left_stick_up"]
action_buttons = ["a"]
cancel_buttons = ["b"]

# === Audio ===
[audio]
enabled = true
volume = 0.6

[log]
debug = false
`
