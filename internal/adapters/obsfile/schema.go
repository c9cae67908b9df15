// Package obsfile reads and writes openbox_session files.
//
// A session file holds the desktop state and one <window> element per
// saved window, in stacking order from top to bottom:
//
//	<?xml version="1.0"?>
//
//	<openbox_session>
//	  <desktop>0</desktop>
//	  <numdesktops>4</numdesktops>
//	  <desktoplayout>
//	    <orientation>0</orientation>
//	    <startcorner>0</startcorner>
//	    <columns>4</columns>
//	    <rows>1</rows>
//	  </desktoplayout>
//	  <desktopnames>
//	    <name>one</name>
//	  </desktopnames>
//	  <window id="1015...">
//	    <name>xterm</name>
//	    <class>XTerm</class>
//	    <role></role>
//	    <windowtype>7</windowtype>
//	    <desktop>0</desktop>
//	    <x>10</x>
//	    <y>20</y>
//	    <width>484</width>
//	    <height>316</height>
//	    <shaded></shaded>
//	  </window>
//	</openbox_session>
//
// A window carries either an id attribute (session manager client id) or
// a command attribute (legacy WM_COMMAND), never both. State flags are
// presence-only elements.
package obsfile

import "encoding/xml"

const (
	rootElement = "openbox_session"
	xmlHeader   = "<?xml version=\"1.0\"?>\n\n"
)

// flag is a presence-only element
type flag struct{}

func flagIf(set bool) *flag {
	if set {
		return &flag{}
	}
	return nil
}

type sessionXML struct {
	XMLName      xml.Name         `xml:"openbox_session"`
	Desktop      int              `xml:"desktop"`
	NumDesktops  int              `xml:"numdesktops"`
	Layout       layoutXML        `xml:"desktoplayout"`
	DesktopNames *desktopNamesXML `xml:"desktopnames,omitempty"`
	Windows      []windowXML      `xml:"window"`
}

type layoutXML struct {
	Orientation int `xml:"orientation"`
	StartCorner int `xml:"startcorner"`
	Columns     int `xml:"columns"`
	Rows        int `xml:"rows"`
}

type desktopNamesXML struct {
	Names []string `xml:"name"`
}

type windowXML struct {
	ID          string `xml:"id,attr,omitempty"`
	Command     string `xml:"command,attr,omitempty"`
	Name        string `xml:"name"`
	Class       string `xml:"class"`
	Role        string `xml:"role"`
	WindowType  int    `xml:"windowtype"`
	Desktop     int    `xml:"desktop"`
	X           int    `xml:"x"`
	Y           int    `xml:"y"`
	Width       int    `xml:"width"`
	Height      int    `xml:"height"`
	Shaded      *flag  `xml:"shaded,omitempty"`
	Iconic      *flag  `xml:"iconic,omitempty"`
	SkipPager   *flag  `xml:"skip_pager,omitempty"`
	SkipTaskbar *flag  `xml:"skip_taskbar,omitempty"`
	Fullscreen  *flag  `xml:"fullscreen,omitempty"`
	Above       *flag  `xml:"above,omitempty"`
	Below       *flag  `xml:"below,omitempty"`
	MaxHorz     *flag  `xml:"max_horz,omitempty"`
	MaxVert     *flag  `xml:"max_vert,omitempty"`
	Undecorated *flag  `xml:"undecorated,omitempty"`
	Focused     *flag  `xml:"focused,omitempty"`
}

// The read-side mirrors keep every field optional so that missing
// elements can be told apart from zero values.

type sessionFileXML struct {
	XMLName      xml.Name         `xml:"openbox_session"`
	Desktop      *string          `xml:"desktop"`
	NumDesktops  *string          `xml:"numdesktops"`
	Layout       *layoutFileXML   `xml:"desktoplayout"`
	DesktopNames *desktopNamesXML `xml:"desktopnames"`
	Windows      []windowFileXML  `xml:"window"`
}

type layoutFileXML struct {
	Orientation *string `xml:"orientation"`
	StartCorner *string `xml:"startcorner"`
	Columns     *string `xml:"columns"`
	Rows        *string `xml:"rows"`
}

type windowFileXML struct {
	ID          *string `xml:"id,attr"`
	Command     *string `xml:"command,attr"`
	Name        *string `xml:"name"`
	Class       *string `xml:"class"`
	Role        *string `xml:"role"`
	WindowType  *string `xml:"windowtype"`
	Desktop     *string `xml:"desktop"`
	X           *string `xml:"x"`
	Y           *string `xml:"y"`
	Width       *string `xml:"width"`
	Height      *string `xml:"height"`
	Shaded      *flag   `xml:"shaded"`
	Iconic      *flag   `xml:"iconic"`
	SkipPager   *flag   `xml:"skip_pager"`
	SkipTaskbar *flag   `xml:"skip_taskbar"`
	Fullscreen  *flag   `xml:"fullscreen"`
	Above       *flag   `xml:"above"`
	Below       *flag   `xml:"below"`
	MaxHorz     *flag   `xml:"max_horz"`
	MaxVert     *flag   `xml:"max_vert"`
	Undecorated *flag   `xml:"undecorated"`
	Focused     *flag   `xml:"focused"`
}
