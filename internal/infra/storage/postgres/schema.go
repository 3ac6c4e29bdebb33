package postgres

// schema создает таблицы состояния; снимок бронирования хранится
// в колонках транзакции с префиксом res_
const schema = `
CREATE TABLE IF NOT EXISTS reservations (
    id               BIGINT PRIMARY KEY,
    customer_id      TEXT           NOT NULL,
    resource         TEXT           NOT NULL,
    start_date       DATE           NOT NULL,
    end_date         DATE           NOT NULL,
    start_time       VARCHAR(5)     NOT NULL,
    end_time         VARCHAR(5)     NOT NULL,
    created_on       DATE           NOT NULL,
    total_cost       NUMERIC(14, 2) NOT NULL,
    down_payment     NUMERIC(14, 2) NOT NULL,
    discount_percent INTEGER        NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transactions (
    id                   BIGINT PRIMARY KEY,
    type                 TEXT           NOT NULL,
    date                 DATE           NOT NULL,
    amount               NUMERIC(14, 2) NOT NULL,
    res_id               BIGINT         NOT NULL,
    res_customer_id      TEXT           NOT NULL,
    res_resource         TEXT           NOT NULL,
    res_start_date       DATE           NOT NULL,
    res_end_date         DATE           NOT NULL,
    res_start_time       VARCHAR(5)     NOT NULL,
    res_end_time         VARCHAR(5)     NOT NULL,
    res_created_on       DATE           NOT NULL,
    res_total_cost       NUMERIC(14, 2) NOT NULL,
    res_down_payment     NUMERIC(14, 2) NOT NULL,
    res_discount_percent INTEGER        NOT NULL DEFAULT 0
);
`
