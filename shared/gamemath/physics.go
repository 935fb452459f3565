package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Accelerate integrates a horizontal input direction over dt seconds.
// With no input the speed decays by friction instead, and the result is
// always clamped to maxSpeed.
func Accelerate(speedX float64, input int, accel, friction, maxSpeed, dt float64) float64 {
	if input != 0 {
		speedX += float64(input) * accel * dt
	} else {
		speedX = ApplyFriction(speedX, friction*dt)
	}
	return ClampSpeed(speedX, maxSpeed)
}

// ApplyGravity adds gravity for dt seconds and caps the fall speed.
func ApplyGravity(speedY, gravity, maxFall, dt float64) float64 {
	speedY += gravity * dt
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}
