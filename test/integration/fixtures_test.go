package integration_test

const sessionFile = `<?xml version="1.0"?>

<openbox_session>
  <desktop>1</desktop>
  <numdesktops>2</numdesktops>
  <desktoplayout>
    <orientation>0</orientation>
    <startcorner>0</startcorner>
    <columns>2</columns>
    <rows>1</rows>
  </desktoplayout>
  <desktopnames>
    <name>web</name>
    <name>mail</name>
  </desktopnames>
  <window id="firefox-1">
    <name>firefox</name>
    <class>Firefox</class>
    <role>browser</role>
    <windowtype>7</windowtype>
    <desktop>0</desktop>
    <x>10</x>
    <y>20</y>
    <width>800</width>
    <height>600</height>
    <focused />
  </window>
  <window id="dup">
    <name>a</name>
    <class>A</class>
    <role></role>
    <windowtype>7</windowtype>
    <desktop>0</desktop>
    <x>0</x>
    <y>0</y>
    <width>1</width>
    <height>1</height>
  </window>
  <window id="dup">
    <name>a</name>
    <class>A</class>
    <role></role>
    <windowtype>7</windowtype>
    <desktop>1</desktop>
    <x>0</x>
    <y>0</y>
    <width>1</width>
    <height>1</height>
  </window>
  <window command="xterm -ls">
    <name>xterm</name>
    <class>XTerm</class>
    <role></role>
    <windowtype>7</windowtype>
    <desktop>1</desktop>
    <x>5</x>
    <y>5</y>
    <width>484</width>
    <height>316</height>
    <shaded />
  </window>
</openbox_session>
`

const snapshotFile = `
desktop: 1
num_desktops: 2
layout: {orientation: 0, start_corner: 0, columns: 2, rows: 1}
names: [web, mail]
focused: w1
windows:
  - handle: w1
    client_id: firefox-1
    name: firefox
    class: Firefox
    role: browser
    area: {x: 10, y: 20, width: 800, height: 600}
  - handle: w2
    command: xterm -ls
    name: xterm
    class: XTerm
    desktop: 1
    shaded: true
    area: {x: 5, y: 5, width: 484, height: 316}
  - handle: w3
    client_id: new-window
    name: gimp
    class: Gimp
    area: {x: 0, y: 0, width: 300, height: 200}
`
