package deploy

const I3Config = `# riceup i3 configuration - gruvbox
set $mod Mod4

font pango:Inter 10

# gruvbox palette
set $bg       #282828
set $bg1      #3c3836
set $fg       #ebdbb2
set $red      #cc241d
set $green    #98971a
set $yellow   #d79921
set $gray     #928374

floating_modifier $mod

bindsym $mod+Return exec i3-sensible-terminal
bindsym $mod+Shift+q kill
bindsym $mod+d exec rofi -show drun
bindsym $mod+Shift+x exec ~/.config/i3/scripts/lock.sh

bindsym $mod+h focus left
bindsym $mod+j focus down
bindsym $mod+k focus up
bindsym $mod+l focus right

bindsym $mod+1 workspace number 1
bindsym $mod+2 workspace number 2
bindsym $mod+3 workspace number 3
bindsym $mod+4 workspace number 4
bindsym $mod+5 workspace number 5

bindsym $mod+Shift+1 move container to workspace number 1
bindsym $mod+Shift+2 move container to workspace number 2
bindsym $mod+Shift+3 move container to workspace number 3
bindsym $mod+Shift+4 move container to workspace number 4
bindsym $mod+Shift+5 move container to workspace number 5

bindsym $mod+Shift+c reload
bindsym $mod+Shift+r restart

# class                 border  backgr. text    indicator child_border
client.focused          $yellow $bg1    $fg     $yellow   $yellow
client.unfocused        $bg1    $bg     $gray   $bg1      $bg1
client.urgent           $red    $red    $fg     $red      $red

default_border pixel 2
gaps inner 8

exec_always --no-startup-id ~/.config/polybar/launch.sh
exec --no-startup-id picom -b
exec --no-startup-id dunst
exec --no-startup-id sh -c 'feh --bg-fill ~/.config/i3/wallpaper.png 2>/dev/null || xsetroot -solid "#282828"'
`

const I3LockScript = `#!/bin/sh
# Blank-screen lock with gruvbox background color.
exec i3lock -c 282828
`

const PolybarConfig = `; riceup polybar configuration - gruvbox
[colors]
background = #282828
background-alt = #3c3836
foreground = #ebdbb2
primary = #d79921
alert = #cc241d

[bar/main]
width = 100%
height = 24pt
background = ${colors.background}
foreground = ${colors.foreground}
line-size = 2pt
padding-left = 1
padding-right = 1
module-margin = 1
font-0 = Inter:size=10;2
font-1 = Fira Code:size=10;2
modules-left = i3
modules-center = date
modules-right = pulseaudio memory cpu

[module/i3]
type = internal/i3
label-focused = %index%
label-focused-background = ${colors.background-alt}
label-focused-underline = ${colors.primary}
label-focused-padding = 1
label-unfocused = %index%
label-unfocused-padding = 1

[module/date]
type = internal/date
interval = 1
date = %H:%M
date-alt = %Y-%m-%d %H:%M:%S
label = %date%

[module/pulseaudio]
type = internal/pulseaudio
label-volume = VOL %percentage%%

[module/memory]
type = internal/memory
interval = 2
label = MEM %percentage_used:2%%

[module/cpu]
type = internal/cpu
interval = 2
label = CPU %percentage:2%%
`

const PolybarLaunchScript = `#!/bin/sh
# Restart polybar on i3 reload.
killall -q polybar
while pgrep -u "$(id -u)" -x polybar >/dev/null; do sleep 0.2; done
polybar main &
`

const RofiConfig = `configuration {
    modi: "drun,run,window";
    font: "Inter 11";
    show-icons: true;
    drun-display-format: "{name}";
}
@theme "gruvbox"
`

const RofiGruvboxTheme = `* {
    bg: #282828;
    bg-alt: #3c3836;
    fg: #ebdbb2;
    accent: #d79921;
    background-color: @bg;
    text-color: @fg;
}
window {
    width: 36%;
    border: 2px;
    border-color: @accent;
}
element selected {
    background-color: @bg-alt;
    text-color: @accent;
}
`

const FirefoxUserChrome = `/* riceup: gruvbox chrome for Firefox */
:root {
    --gruv-bg: #282828;
    --gruv-bg-alt: #3c3836;
    --gruv-fg: #ebdbb2;
    --gruv-accent: #d79921;
}
#navigator-toolbox {
    background-color: var(--gruv-bg) !important;
    color: var(--gruv-fg) !important;
}
.tabbrowser-tab[selected] .tab-background {
    background-color: var(--gruv-bg-alt) !important;
}
`

const FirefoxUserContent = `/* riceup: gruvbox defaults for in-content pages */
@-moz-document url("about:newtab"), url("about:home") {
    body {
        background-color: #282828 !important;
        color: #ebdbb2 !important;
    }
}
`

const GreeterThemeHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>gruvbox greeter</title>
    <link rel="stylesheet" href="gruvbox.css">
</head>
<body>
    <div id="panel">
        <h1 id="hostname"></h1>
        <form id="login">
            <input type="text" id="username" placeholder="username" autofocus>
            <input type="password" id="password" placeholder="password">
            <button type="submit">Log in</button>
        </form>
        <p id="message"></p>
    </div>
    <script src="gruvbox.js"></script>
</body>
</html>
`

const GreeterThemeCSS = `body {
    margin: 0;
    height: 100vh;
    display: flex;
    align-items: center;
    justify-content: center;
    background: #282828;
    color: #ebdbb2;
    font-family: "Inter", sans-serif;
}
#panel {
    background: #3c3836;
    padding: 2rem 3rem;
    border: 2px solid #d79921;
}
input, button {
    display: block;
    width: 100%;
    margin: 0.5rem 0;
    padding: 0.5rem;
    background: #282828;
    color: #ebdbb2;
    border: 1px solid #928374;
}
button:hover {
    border-color: #d79921;
}
#message {
    color: #cc241d;
}
`

const GreeterThemeJS = `// Minimal web-greeter theme shim. Relies on the lightdm object the greeter
// injects into the page.
document.getElementById("hostname").textContent = lightdm.hostname;

const form = document.getElementById("login");
const message = document.getElementById("message");

form.addEventListener("submit", (e) => {
    e.preventDefault();
    lightdm.authenticate(document.getElementById("username").value);
});

lightdm.show_prompt.connect(() => {
    lightdm.respond(document.getElementById("password").value);
});

lightdm.authentication_complete.connect(() => {
    if (lightdm.is_authenticated) {
        lightdm.start_session(lightdm.default_session);
    } else {
        message.textContent = "Authentication failed";
    }
});
`
