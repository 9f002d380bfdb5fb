package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS settings (
    key    TEXT PRIMARY KEY,
    value  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cities (
    name       TEXT PRIMARY KEY,
    position   INTEGER NOT NULL,
    food_rate  REAL NOT NULL,
    sight      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS routes (
    route_key  TEXT PRIMARY KEY,
    position   INTEGER NOT NULL,
    name       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS route_stops (
    route_key  TEXT NOT NULL REFERENCES routes(route_key) ON DELETE CASCADE,
    seq        INTEGER NOT NULL,
    city       TEXT NOT NULL,
    PRIMARY KEY (route_key, seq)
);

CREATE TABLE IF NOT EXISTS hotel_tiers (
    tier_key   TEXT PRIMARY KEY,
    position   INTEGER NOT NULL,
    label      TEXT NOT NULL,
    rate       REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS transports (
    transport_key  TEXT PRIMARY KEY,
    position       INTEGER NOT NULL,
    name           TEXT NOT NULL,
    rate           REAL NOT NULL
);
`

const settingHopDistance = "hop_distance_km"
