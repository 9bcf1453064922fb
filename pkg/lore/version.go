package lore

const Version = "0.1.0"
